package receipt

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/gm3197/CSE437s-group-4/internal/handlers/v1"
	"github.com/gm3197/CSE437s-group-4/internal/logging"
	"github.com/gm3197/CSE437s-group-4/internal/model"
)

// UploadReceiptInput is the Huma input for scanning a receipt.
type UploadReceiptInput struct {
	Authorization string `header:"Authorization" doc:"Session token"`
	RawBody       []byte `contentType:"image/jpeg"`
}

// UploadReceiptOutput reports whether the scan produced a receipt.
type UploadReceiptOutput struct {
	Body model.ScanResult
}

func (h *Handler) registerUpload(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "upload-receipt",
		Method:      http.MethodPost,
		Path:        "/receipts/auto",
		Summary:     "Scan a receipt",
		Description: "Creates an unverified receipt from a JPEG photo.",
		Tags:        []string{"Receipts"},
	}, h.upload)
}

func (h *Handler) upload(ctx context.Context, input *UploadReceiptInput) (*UploadReceiptOutput, error) {
	user, err := v1.Authorize(h.Store, input.Authorization)
	if err != nil {
		return nil, err
	}

	result := h.Store.Upload(user, input.RawBody)
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("scanBytes", len(input.RawBody))
		logData.AddData("scanSuccess", result.Success)
	}
	return &UploadReceiptOutput{Body: result}, nil
}
