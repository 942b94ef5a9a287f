package commands

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gm3197/CSE437s-group-4/internal/dispatch"
	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/service"
)

func receiptsCommand() *cli.Command {
	return &cli.Command{
		Name:    "receipts",
		Aliases: []string{"receipt"},
		Usage:   "list, inspect and edit receipts",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list all receipts",
				Action: withRuntime(false, listReceipts),
			},
			{
				Name:      "show",
				Usage:     "show a receipt and its items",
				ArgsUsage: "RECEIPT",
				Action:    withRuntime(false, showReceipt),
			},
			{
				Name:      "delete",
				Usage:     "delete a receipt",
				ArgsUsage: "RECEIPT",
				Action:    withRuntime(false, deleteReceipt),
			},
			{
				Name:      "upload",
				Usage:     "scan a JPEG photo of a receipt",
				ArgsUsage: "FILE",
				Action:    withRuntime(false, uploadReceipt),
			},
			{
				Name:      "image",
				Usage:     "download the scan of a receipt or one of its items",
				ArgsUsage: "RECEIPT",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "item", Usage: "item id, for the cropped item scan"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file", Value: "scan.png"},
				},
				Action: withRuntime(false, receiptImage),
			},
			{
				Name:      "edit",
				Usage:     "change receipt details",
				ArgsUsage: "RECEIPT",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "merchant"},
					&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD"},
					&cli.StringFlag{Name: "payment", Usage: "payment method"},
					&cli.StringFlag{Name: "tax"},
					&cli.BoolFlag{Name: "verified", Usage: "mark the receipt verified, or unverified with --verified=false"},
				},
				Action: withRuntime(false, editReceipt),
			},
		},
	}
}

func listReceipts(c *cli.Context, rt *runtime) error {
	receipts, err := call(c, rt, func() *dispatch.Future[[]model.Receipt] {
		return rt.svc.Receipts.Fetch(c.Context)
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to list receipts: %v", err), 1)
	}
	printReceipts(rt.out, receipts)
	return nil
}

// openReceipt starts a detail session for the receipt named by the first
// argument.
func openReceipt(c *cli.Context, rt *runtime) (*service.ReceiptSession, error) {
	id, err := intArg(c, 0, "receipt id")
	if err != nil {
		return nil, err
	}
	s, err := call(c, rt, func() *dispatch.Future[*service.ReceiptSession] {
		return rt.svc.Reconcile.Open(c.Context, id)
	})
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("failed to load receipt %d: %v", id, err), 1)
	}
	return s, nil
}

func showReceipt(c *cli.Context, rt *runtime) error {
	s, err := openReceipt(c, rt)
	if err != nil {
		return err
	}
	var details *model.ReceiptDetails
	if err := onLoop(c, rt, func() { details = s.Buffer.Current() }); err != nil {
		return err
	}
	printDetails(rt.out, details)
	return nil
}

func deleteReceipt(c *cli.Context, rt *runtime) error {
	id, err := intArg(c, 0, "receipt id")
	if err != nil {
		return err
	}
	if _, err := call(c, rt, func() *dispatch.Future[[]model.Receipt] {
		return rt.svc.Receipts.Delete(c.Context, id)
	}); err != nil {
		return cli.Exit(fmt.Sprintf("failed to delete receipt %d: %v", id, err), 1)
	}
	fmt.Fprintf(rt.out, "deleted receipt %d\n", id)
	return nil
}

func uploadReceipt(c *cli.Context, rt *runtime) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("missing file", 2)
	}
	jpeg, err := os.ReadFile(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	result, err := call(c, rt, func() *dispatch.Future[model.ScanResult] {
		return rt.svc.Receipts.Upload(c.Context, jpeg)
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("upload failed: %v", err), 1)
	}
	if !result.Success {
		return cli.Exit("the server could not read the receipt", 1)
	}
	if result.ReceiptID != nil {
		fmt.Fprintf(rt.out, "created receipt %d\n", *result.ReceiptID)
	} else {
		fmt.Fprintln(rt.out, "receipt uploaded")
	}
	return nil
}

func receiptImage(c *cli.Context, rt *runtime) error {
	id, err := intArg(c, 0, "receipt id")
	if err != nil {
		return err
	}

	png, err := call(c, rt, func() *dispatch.Future[[]byte] {
		if c.IsSet("item") {
			return rt.svc.Receipts.ItemImage(c.Context, id, c.Int("item"))
		}
		return rt.svc.Receipts.ScanImage(c.Context, id)
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load scan: %v", err), 1)
	}
	if err := os.WriteFile(c.String("out"), png, 0o644); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	fmt.Fprintf(rt.out, "wrote %s\n", c.String("out"))
	return nil
}

func editReceipt(c *cli.Context, rt *runtime) error {
	s, err := openReceipt(c, rt)
	if err != nil {
		return err
	}

	var editErr error
	if err := onLoop(c, rt, func() {
		if c.IsSet("merchant") {
			merchant := s.Buffer.Current().Merchant
			merchant.Name = c.String("merchant")
			s.Buffer.SetMerchant(merchant)
		}
		if c.IsSet("date") {
			s.Buffer.SetDate(c.String("date"))
		}
		if c.IsSet("payment") {
			s.Buffer.SetPaymentMethod(c.String("payment"))
		}
		if c.IsSet("tax") {
			tax, err := decimalValue(c.String("tax"), "tax")
			if err != nil {
				editErr = err
				return
			}
			s.Buffer.SetTax(tax)
		}
		if c.IsSet("verified") {
			s.Buffer.SetClean(c.Bool("verified"))
		}
	}); err != nil {
		return err
	}
	if editErr != nil {
		return editErr
	}
	return save(c, rt, s)
}

// save submits the session's edits and prints the reconciled receipt.
func save(c *cli.Context, rt *runtime, s *service.ReceiptSession) error {
	_, err := call(c, rt, func() *dispatch.Future[service.SaveResult] {
		return rt.svc.Reconcile.Save(c.Context, s)
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("save failed: %v", err), 1)
	}

	var details *model.ReceiptDetails
	if err := onLoop(c, rt, func() { details = s.Buffer.Current() }); err != nil {
		return err
	}
	printDetails(rt.out, details)
	return nil
}
