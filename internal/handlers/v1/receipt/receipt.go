package receipt

import (
	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/gm3197/CSE437s-group-4/internal/handlers/v1"
	"github.com/gm3197/CSE437s-group-4/internal/model"
)

// receiptStore is the interface for reading and writing receipts.
type receiptStore interface {
	v1.Authenticator
	Receipts(user int) []model.Receipt
	Receipt(user, receiptID int) (*model.ReceiptDetails, error)
	UpdateReceipt(user int, details *model.ReceiptDetails) error
	DeleteReceipt(user, receiptID int) error
	Upload(user int, jpeg []byte) model.ScanResult
	ReceiptScan(user, receiptID int) ([]byte, error)
	ItemScan(user, receiptID, itemID int) ([]byte, error)
}

// Handler serves the /receipts endpoints.
type Handler struct {
	Store receiptStore
}

func NewHandler(store receiptStore) *Handler {
	return &Handler{Store: store}
}

// Register registers every receipt endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	h.registerList(api)
	h.registerGet(api)
	h.registerUpdate(api)
	h.registerDelete(api)
	h.registerUpload(api)
	h.registerScans(api)
}

// ReceiptPath identifies one receipt.
type ReceiptPath struct {
	Authorization string `header:"Authorization" doc:"Session token"`
	ReceiptID     int    `path:"receipt_id" doc:"Receipt id"`
}
