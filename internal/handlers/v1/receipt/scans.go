package receipt

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/gm3197/CSE437s-group-4/internal/handlers/v1"
)

// ItemScanInput identifies one item's scan.
type ItemScanInput struct {
	ReceiptPath
	ItemID int `path:"item_id" doc:"Item id"`
}

// ScanOutput is a PNG image.
type ScanOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

func (h *Handler) registerScans(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-receipt-scan",
		Method:      http.MethodGet,
		Path:        "/receipts/{receipt_id}/scan.png",
		Summary:     "Get receipt scan",
		Tags:        []string{"Images"},
	}, h.receiptScan)

	huma.Register(api, huma.Operation{
		OperationID: "get-item-scan",
		Method:      http.MethodGet,
		Path:        "/receipts/{receipt_id}/items/{item_id}/scan.png",
		Summary:     "Get item scan",
		Description: "Returns the part of the receipt scan showing one item.",
		Tags:        []string{"Images"},
	}, h.itemScan)
}

func (h *Handler) receiptScan(ctx context.Context, input *ReceiptPath) (*ScanOutput, error) {
	user, err := v1.Authorize(h.Store, input.Authorization)
	if err != nil {
		return nil, err
	}
	png, err := h.Store.ReceiptScan(user, input.ReceiptID)
	if err != nil {
		return nil, v1.StoreError("failed to load scan", err)
	}
	return &ScanOutput{ContentType: "image/png", Body: png}, nil
}

func (h *Handler) itemScan(ctx context.Context, input *ItemScanInput) (*ScanOutput, error) {
	user, err := v1.Authorize(h.Store, input.Authorization)
	if err != nil {
		return nil, err
	}
	png, err := h.Store.ItemScan(user, input.ReceiptID, input.ItemID)
	if err != nil {
		return nil, v1.StoreError("failed to load scan", err)
	}
	return &ScanOutput{ContentType: "image/png", Body: png}, nil
}
