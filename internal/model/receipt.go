// Package model holds the wire types exchanged with the receipt API.
package model

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The API exchanges money as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Receipt is one row of the receipt list.
type Receipt struct {
	ID       int             `json:"id"`
	Date     string          `json:"date"`
	Merchant Merchant        `json:"merchant"`
	Total    decimal.Decimal `json:"total"`
	Clean    bool            `json:"clean"`
}

// ReceiptList is the body of GET /receipts.
type ReceiptList struct {
	Receipts []Receipt `json:"receipts"`
}

// ReceiptDetails is the full detail of one receipt. Date is kept as the
// server's "YYYY-MM-DD" string and never parsed.
type ReceiptDetails struct {
	ID            int             `json:"id"`
	OwnerID       int             `json:"owner_id"`
	Clean         bool            `json:"clean"`
	Date          string          `json:"date"`
	Merchant      Merchant        `json:"merchant"`
	PaymentMethod string          `json:"payment_method"`
	Items         []ReceiptItem   `json:"items"`
	Tax           decimal.Decimal `json:"tax"`
}

// Total is the sum of all item prices plus tax. The server does not enforce
// it, so it is advisory only.
func (d *ReceiptDetails) Total() decimal.Decimal {
	total := d.Tax
	for _, item := range d.Items {
		total = total.Add(item.Price)
	}
	return total
}

// Summary builds the list row for these details.
func (d *ReceiptDetails) Summary() Receipt {
	return Receipt{
		ID:       d.ID,
		Date:     d.Date,
		Merchant: d.Merchant,
		Total:    d.Total(),
		Clean:    d.Clean,
	}
}

// Item returns the item with the given id.
func (d *ReceiptDetails) Item(id int) (ReceiptItem, bool) {
	for _, item := range d.Items {
		if item.ID == id {
			return item, true
		}
	}
	return ReceiptItem{}, false
}

// Clone returns a deep copy.
func (d *ReceiptDetails) Clone() *ReceiptDetails {
	if d == nil {
		return nil
	}
	clone := *d
	if d.Items != nil {
		clone.Items = make([]ReceiptItem, len(d.Items))
		for i, item := range d.Items {
			clone.Items[i] = item.Clone()
		}
	}
	return &clone
}

// SameMetadata reports whether the receipt level fields match. Items and the
// server owned id fields are ignored.
func (d *ReceiptDetails) SameMetadata(other *ReceiptDetails) bool {
	return d.Merchant == other.Merchant &&
		d.Date == other.Date &&
		d.PaymentMethod == other.PaymentMethod &&
		d.Tax.Equal(other.Tax) &&
		d.Clean == other.Clean
}

// ScanResult is the body returned by POST /receipts/auto.
type ScanResult struct {
	Success   bool `json:"success"`
	ReceiptID *int `json:"receipt_id,omitempty"`
}
