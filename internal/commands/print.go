package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gm3197/CSE437s-group-4/internal/model"
)

func verified(clean bool) string {
	if clean {
		return "verified"
	}
	return "unverified"
}

func category(id *int) string {
	if id == nil {
		return "-"
	}
	return fmt.Sprint(*id)
}

func printReceipts(out io.Writer, receipts []model.Receipt) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tMERCHANT\tTOTAL\tSTATUS")
	for _, r := range receipts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.ID, r.Date, r.Merchant, r.Total.StringFixed(2), verified(r.Clean))
	}
	_ = w.Flush()
}

func printDetails(out io.Writer, d *model.ReceiptDetails) {
	fmt.Fprintf(out, "receipt %d (%s)\n", d.ID, verified(d.Clean))
	fmt.Fprintf(out, "merchant: %s\n", d.Merchant)
	if d.Merchant.Address != "" {
		fmt.Fprintf(out, "address:  %s\n", d.Merchant.Address)
	}
	fmt.Fprintf(out, "date:     %s\n", d.Date)
	fmt.Fprintf(out, "payment:  %s\n", d.PaymentMethod)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tDESCRIPTION\tPRICE\tCATEGORY")
	for _, item := range d.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", item.ID, item.Description, item.Price.StringFixed(2), category(item.Category))
	}
	fmt.Fprintf(w, "\ttax\t%s\t\n", d.Tax.StringFixed(2))
	fmt.Fprintf(w, "\ttotal\t%s\t\n", d.Total().StringFixed(2))
	_ = w.Flush()
}

func printCategories(out io.Writer, categories []model.Category) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSPENT\tGOAL")
	for _, c := range categories {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Name, c.MonthSpend.StringFixed(2), c.MonthlyGoal.StringFixed(2))
	}
	_ = w.Flush()
}
