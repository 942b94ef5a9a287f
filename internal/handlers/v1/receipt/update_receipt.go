package receipt

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/gm3197/CSE437s-group-4/internal/handlers/v1"
	"github.com/gm3197/CSE437s-group-4/internal/model"
)

// UpdateReceiptInput is the Huma input for changing receipt details.
type UpdateReceiptInput struct {
	ReceiptPath
	RawBody []byte
}

func (h *Handler) registerUpdate(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-receipt",
		Method:        http.MethodPatch,
		Path:          "/receipts/{receipt_id}",
		Summary:       "Update receipt",
		Description:   "Replaces the merchant, date, payment method, tax and verified flag of a receipt.",
		Tags:          []string{"Receipts"},
		DefaultStatus: http.StatusNoContent,
	}, h.update)
}

func (h *Handler) update(ctx context.Context, input *UpdateReceiptInput) (*struct{}, error) {
	user, err := v1.Authorize(h.Store, input.Authorization)
	if err != nil {
		return nil, err
	}

	details, err := v1.DecodeBody[model.ReceiptDetails](input.RawBody)
	if err != nil {
		return nil, err
	}
	details.ID = input.ReceiptID

	if err := h.Store.UpdateReceipt(user, &details); err != nil {
		return nil, v1.StoreError("failed to update receipt", err)
	}
	return &struct{}{}, nil
}
