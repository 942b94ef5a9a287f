package receipt

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/gm3197/CSE437s-group-4/internal/handlers/v1"
	"github.com/gm3197/CSE437s-group-4/internal/model"
)

// GetReceiptOutput is the Huma output for one receipt.
type GetReceiptOutput struct {
	Body *model.ReceiptDetails
}

func (h *Handler) registerGet(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-receipt",
		Method:      http.MethodGet,
		Path:        "/receipts/{receipt_id}",
		Summary:     "Get receipt",
		Description: "Returns a receipt with all of its items.",
		Tags:        []string{"Receipts"},
	}, h.get)
}

func (h *Handler) get(ctx context.Context, input *ReceiptPath) (*GetReceiptOutput, error) {
	user, err := v1.Authorize(h.Store, input.Authorization)
	if err != nil {
		return nil, err
	}

	details, err := h.Store.Receipt(user, input.ReceiptID)
	if err != nil {
		return nil, v1.StoreError("failed to load receipt", err)
	}
	return &GetReceiptOutput{Body: details}, nil
}
