package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/gm3197/CSE437s-group-4/internal/dispatch"
	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/service"
)

func categoriesCommand() *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "manage spending categories",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list categories with their spend",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "year"},
					&cli.IntFlag{Name: "month"},
				},
				Action: withRuntime(false, listCategories),
			},
			{
				Name:      "add",
				Usage:     "create a category",
				ArgsUsage: "NAME MONTHLY_GOAL",
				Action:    withRuntime(false, addCategory),
			},
			{
				Name:      "delete",
				Usage:     "delete a category",
				ArgsUsage: "CATEGORY",
				Action:    withRuntime(false, deleteCategory),
			},
		},
	}
}

func listCategories(c *cli.Context, rt *runtime) error {
	var scope service.Scope
	if c.IsSet("year") || c.IsSet("month") {
		year, month := c.Int("year"), c.Int("month")
		scope = service.Scope{Year: &year, Month: &month}
	}

	categories, err := call(c, rt, func() *dispatch.Future[[]model.Category] {
		return rt.svc.Categories.Fetch(c.Context, scope)
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to list categories: %v", err), 1)
	}
	printCategories(rt.out, categories)
	return nil
}

func addCategory(c *cli.Context, rt *runtime) error {
	name := c.Args().Get(0)
	if name == "" {
		return cli.Exit("missing name", 2)
	}
	goal, err := decimalValue(c.Args().Get(1), "monthly goal")
	if err != nil {
		return err
	}

	categories, err := call(c, rt, func() *dispatch.Future[[]model.Category] {
		return rt.svc.Categories.Create(c.Context, name, goal)
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to create category: %v", err), 1)
	}
	printCategories(rt.out, categories)
	return nil
}

func deleteCategory(c *cli.Context, rt *runtime) error {
	id, err := intArg(c, 0, "category id")
	if err != nil {
		return err
	}
	categories, err := call(c, rt, func() *dispatch.Future[[]model.Category] {
		return rt.svc.Categories.Delete(c.Context, id)
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to delete category %d: %v", id, err), 1)
	}
	printCategories(rt.out, categories)
	return nil
}
