package item

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/gm3197/CSE437s-group-4/internal/handlers/v1"
	"github.com/gm3197/CSE437s-group-4/internal/logging"
	"github.com/gm3197/CSE437s-group-4/internal/model"
)

// itemStore is the interface for changing receipt items.
type itemStore interface {
	v1.Authenticator
	CreateItem(user, receiptID int, item model.NewItem) (int, error)
	UpdateItem(user, receiptID int, item model.ReceiptItem) error
	DeleteItem(user, receiptID, itemID int) error
}

// Handler serves /receipts/{receipt_id}/items.
type Handler struct {
	Store itemStore
}

func NewHandler(store itemStore) *Handler {
	return &Handler{Store: store}
}

// CreateItemInput is the Huma input for adding an item.
type CreateItemInput struct {
	Authorization string `header:"Authorization" doc:"Session token"`
	ReceiptID     int    `path:"receipt_id" doc:"Receipt id"`
	RawBody       []byte
}

// CreateItemOutput carries the id of the new item.
type CreateItemOutput struct {
	Status int
	Body   model.NewItemResponse
}

// ItemInput identifies one item; RawBody is only read by updates.
type ItemInput struct {
	Authorization string `header:"Authorization" doc:"Session token"`
	ReceiptID     int    `path:"receipt_id" doc:"Receipt id"`
	ItemID        int    `path:"item_id" doc:"Item id"`
	RawBody       []byte
}

// Register registers the item endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-item",
		Method:      http.MethodPost,
		Path:        "/receipts/{receipt_id}/items",
		Summary:     "Add item",
		Tags:        []string{"Items"},
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID:   "update-item",
		Method:        http.MethodPatch,
		Path:          "/receipts/{receipt_id}/items/{item_id}",
		Summary:       "Update item",
		Description:   "Replaces the description, price and category of an item.",
		Tags:          []string{"Items"},
		DefaultStatus: http.StatusNoContent,
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-item",
		Method:        http.MethodDelete,
		Path:          "/receipts/{receipt_id}/items/{item_id}",
		Summary:       "Delete item",
		Tags:          []string{"Items"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *Handler) create(ctx context.Context, input *CreateItemInput) (*CreateItemOutput, error) {
	user, err := v1.Authorize(h.Store, input.Authorization)
	if err != nil {
		return nil, err
	}
	item, err := v1.DecodeBody[model.NewItem](input.RawBody)
	if err != nil {
		return nil, err
	}

	id, err := h.Store.CreateItem(user, input.ReceiptID, item)
	if err != nil {
		return nil, v1.StoreError("failed to create item", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("itemID", id)
	}
	return &CreateItemOutput{
		Status: http.StatusCreated,
		Body:   model.NewItemResponse{ItemID: id},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *ItemInput) (*struct{}, error) {
	user, err := v1.Authorize(h.Store, input.Authorization)
	if err != nil {
		return nil, err
	}
	item, err := v1.DecodeBody[model.ReceiptItem](input.RawBody)
	if err != nil {
		return nil, err
	}
	item.ID = input.ItemID

	if err := h.Store.UpdateItem(user, input.ReceiptID, item); err != nil {
		return nil, v1.StoreError("failed to update item", err)
	}
	return &struct{}{}, nil
}

func (h *Handler) delete(ctx context.Context, input *ItemInput) (*struct{}, error) {
	user, err := v1.Authorize(h.Store, input.Authorization)
	if err != nil {
		return nil, err
	}
	if err := h.Store.DeleteItem(user, input.ReceiptID, input.ItemID); err != nil {
		return nil, v1.StoreError("failed to delete item", err)
	}
	return &struct{}{}, nil
}
