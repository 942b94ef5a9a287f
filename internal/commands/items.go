package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/gm3197/CSE437s-group-4/internal/buffer"
	"github.com/gm3197/CSE437s-group-4/internal/dispatch"
	"github.com/gm3197/CSE437s-group-4/internal/service"
)

func itemsCommand() *cli.Command {
	return &cli.Command{
		Name:  "items",
		Usage: "change the items of a receipt",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "add an item",
				ArgsUsage: "RECEIPT",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Required: true},
					&cli.StringFlag{Name: "price", Aliases: []string{"p"}, Required: true},
					&cli.StringFlag{Name: "category", Usage: "category id or none"},
				},
				Action: withRuntime(false, addItem),
			},
			{
				Name:      "edit",
				Usage:     "change an item",
				ArgsUsage: "RECEIPT ITEM",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}},
					&cli.StringFlag{Name: "price", Aliases: []string{"p"}},
					&cli.StringFlag{Name: "category", Usage: "category id or none"},
				},
				Action: withRuntime(false, editItem),
			},
			{
				Name:      "delete",
				Usage:     "delete an item",
				ArgsUsage: "RECEIPT ITEM",
				Action:    withRuntime(false, deleteItem),
			},
			{
				Name:      "categorize",
				Usage:     "put every item of a receipt in one category",
				ArgsUsage: "RECEIPT CATEGORY|none",
				Action:    withRuntime(false, categorizeItems),
			},
		},
	}
}

func addItem(c *cli.Context, rt *runtime) error {
	price, err := decimalValue(c.String("price"), "price")
	if err != nil {
		return err
	}
	categoryID, err := categoryValue(c.String("category"))
	if err != nil {
		return err
	}

	s, err := openReceipt(c, rt)
	if err != nil {
		return err
	}
	if err := onLoop(c, rt, func() {
		s.Buffer.AddItem(c.String("description"), price, categoryID)
	}); err != nil {
		return err
	}
	return save(c, rt, s)
}

func editItem(c *cli.Context, rt *runtime) error {
	itemID, err := intArg(c, 1, "item id")
	if err != nil {
		return err
	}
	s, err := openReceipt(c, rt)
	if err != nil {
		return err
	}

	var editErr error
	if err := onLoop(c, rt, func() {
		item, ok := s.Buffer.Current().Item(itemID)
		if !ok {
			editErr = cli.Exit(fmt.Sprintf("receipt %d has no item %d", s.ID, itemID), 1)
			return
		}
		if c.IsSet("description") {
			item.Description = c.String("description")
		}
		if c.IsSet("price") {
			if item.Price, editErr = decimalValue(c.String("price"), "price"); editErr != nil {
				return
			}
		}
		if c.IsSet("category") {
			if item.Category, editErr = categoryValue(c.String("category")); editErr != nil {
				return
			}
		}
		editErr = s.Buffer.UpdateItem(item)
	}); err != nil {
		return err
	}
	if editErr != nil {
		return editErr
	}
	return save(c, rt, s)
}

func deleteItem(c *cli.Context, rt *runtime) error {
	itemID, err := intArg(c, 1, "item id")
	if err != nil {
		return err
	}
	s, err := openReceipt(c, rt)
	if err != nil {
		return err
	}

	if _, err := call(c, rt, func() *dispatch.Future[struct{}] {
		return rt.svc.Reconcile.DeleteItem(c.Context, s, itemID)
	}); err != nil {
		return cli.Exit(fmt.Sprintf("failed to delete item %d: %v", itemID, err), 1)
	}
	fmt.Fprintf(rt.out, "deleted item %d\n", itemID)
	return nil
}

func categorizeItems(c *cli.Context, rt *runtime) error {
	if c.Args().Len() < 2 {
		return cli.Exit("missing category", 2)
	}
	categoryID, err := categoryValue(c.Args().Get(1))
	if err != nil {
		return err
	}
	s, err := openReceipt(c, rt)
	if err != nil {
		return err
	}

	result, err := call(c, rt, func() *dispatch.Future[service.CategoryResult] {
		return rt.svc.Reconcile.ApplyCategory(c.Context, s, categoryID)
	})
	for itemID, itemErr := range result.Failed {
		fmt.Fprintf(rt.out, "item %d: %v\n", itemID, itemErr)
	}
	if err != nil {
		return cli.Exit(fmt.Sprintf("%d items could not be updated", len(result.Failed)), 1)
	}

	var state buffer.State
	if err := onLoop(c, rt, func() { state = s.Buffer.State() }); err != nil {
		return err
	}
	fmt.Fprintf(rt.out, "receipt %d: %s\n", s.ID, state)
	return nil
}
