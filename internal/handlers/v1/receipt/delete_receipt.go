package receipt

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/gm3197/CSE437s-group-4/internal/handlers/v1"
)

func (h *Handler) registerDelete(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-receipt",
		Method:        http.MethodDelete,
		Path:          "/receipts/{receipt_id}",
		Summary:       "Delete receipt",
		Tags:          []string{"Receipts"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *Handler) delete(ctx context.Context, input *ReceiptPath) (*struct{}, error) {
	user, err := v1.Authorize(h.Store, input.Authorization)
	if err != nil {
		return nil, err
	}
	if err := h.Store.DeleteReceipt(user, input.ReceiptID); err != nil {
		return nil, v1.StoreError("failed to delete receipt", err)
	}
	return &struct{}{}, nil
}
