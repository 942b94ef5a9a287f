package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gm3197/CSE437s-group-4/internal/apierr"
	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/transport"
)

type IItemResource interface {
	Create(ctx context.Context, receiptID int, item model.NewItem) (int, error)
	Update(ctx context.Context, receiptID int, item model.ReceiptItem) error
	Delete(ctx context.Context, receiptID, itemID int) error
}

type ItemResource struct {
	sender Sender
}

func itemPath(receiptID, itemID int) string {
	return fmt.Sprintf("/receipts/%d/items/%d", receiptID, itemID)
}

// Create returns the server assigned item id.
func (r *ItemResource) Create(ctx context.Context, receiptID int, item model.NewItem) (int, error) {
	const op = "items.Create"
	resp, err := jsonCall(ctx, r.sender, op, http.MethodPost, fmt.Sprintf("/receipts/%d/items", receiptID), item)
	if err != nil {
		return 0, err
	}
	created, err := decode[model.NewItemResponse](op, resp)
	if err != nil {
		return 0, err
	}
	if created.ItemID <= 0 {
		return 0, &apierr.DecodeError{Op: op, Err: errors.New("missing item_id")}
	}
	return created.ItemID, nil
}

func (r *ItemResource) Update(ctx context.Context, receiptID int, item model.ReceiptItem) error {
	_, err := jsonCall(ctx, r.sender, "items.Update", http.MethodPatch, itemPath(receiptID, item.ID), item)
	return err
}

func (r *ItemResource) Delete(ctx context.Context, receiptID, itemID int) error {
	_, err := call(ctx, r.sender, "items.Delete", &transport.Request{Method: http.MethodDelete, Path: itemPath(receiptID, itemID)})
	return err
}
