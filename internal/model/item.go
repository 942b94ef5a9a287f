package model

import (
	"github.com/shopspring/decimal"
)

// ReceiptItem is one line of a receipt. An ID of zero or below marks an
// item that only exists locally and has not been created on the server.
type ReceiptItem struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    *int            `json:"category"`
	Auto        *bool           `json:"auto,omitempty"`
}

// IsPlaceholder reports whether the item still carries a local id.
func (i ReceiptItem) IsPlaceholder() bool {
	return i.ID <= 0
}

// SameContent compares the user editable fields.
func (i ReceiptItem) SameContent(other ReceiptItem) bool {
	return i.Description == other.Description &&
		i.Price.Equal(other.Price) &&
		sameCategory(i.Category, other.Category)
}

func (i ReceiptItem) Clone() ReceiptItem {
	clone := i
	if i.Category != nil {
		category := *i.Category
		clone.Category = &category
	}
	if i.Auto != nil {
		auto := *i.Auto
		clone.Auto = &auto
	}
	return clone
}

func sameCategory(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// NewItem is the body of POST /receipts/{id}/items.
type NewItem struct {
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    *int            `json:"category,omitempty"`
}

// NewItemFrom builds a create request from a local item.
func NewItemFrom(item ReceiptItem) NewItem {
	return NewItem{
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
	}
}

// NewItemResponse is returned by POST /receipts/{id}/items.
type NewItemResponse struct {
	ItemID int `json:"item_id"`
}
