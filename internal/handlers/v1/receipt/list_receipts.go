package receipt

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/gm3197/CSE437s-group-4/internal/handlers/v1"
	"github.com/gm3197/CSE437s-group-4/internal/logging"
	"github.com/gm3197/CSE437s-group-4/internal/model"
)

// ListReceiptsInput is the Huma input for listing receipts.
type ListReceiptsInput struct {
	Authorization string `header:"Authorization" doc:"Session token"`
}

// ListReceiptsOutput is the Huma output for listing receipts.
type ListReceiptsOutput struct {
	Body model.ReceiptList
}

func (h *Handler) registerList(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-receipts",
		Method:      http.MethodGet,
		Path:        "/receipts",
		Summary:     "List receipts",
		Description: "Returns a summary of every receipt owned by the caller.",
		Tags:        []string{"Receipts"},
	}, h.list)
}

func (h *Handler) list(ctx context.Context, input *ListReceiptsInput) (*ListReceiptsOutput, error) {
	user, err := v1.Authorize(h.Store, input.Authorization)
	if err != nil {
		return nil, err
	}

	receipts := h.Store.Receipts(user)
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("receiptCount", len(receipts))
	}
	return &ListReceiptsOutput{Body: model.ReceiptList{Receipts: receipts}}, nil
}
