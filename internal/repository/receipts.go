package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/transport"
)

type IReceiptResource interface {
	List(ctx context.Context) ([]model.Receipt, error)
	Get(ctx context.Context, receiptID int) (*model.ReceiptDetails, error)
	UpdateDetails(ctx context.Context, details *model.ReceiptDetails) error
	Delete(ctx context.Context, receiptID int) error
	Upload(ctx context.Context, jpeg []byte) (model.ScanResult, error)
}

type ReceiptResource struct {
	sender Sender
}

func receiptPath(receiptID int) string {
	return fmt.Sprintf("/receipts/%d", receiptID)
}

func (r *ReceiptResource) List(ctx context.Context) ([]model.Receipt, error) {
	const op = "receipts.List"
	resp, err := call(ctx, r.sender, op, &transport.Request{Method: http.MethodGet, Path: "/receipts"})
	if err != nil {
		return nil, err
	}
	list, err := decode[model.ReceiptList](op, resp)
	if err != nil {
		return nil, err
	}
	return list.Receipts, nil
}

func (r *ReceiptResource) Get(ctx context.Context, receiptID int) (*model.ReceiptDetails, error) {
	const op = "receipts.Get"
	resp, err := call(ctx, r.sender, op, &transport.Request{Method: http.MethodGet, Path: receiptPath(receiptID)})
	if err != nil {
		return nil, err
	}
	details, err := decode[model.ReceiptDetails](op, resp)
	if err != nil {
		return nil, err
	}
	return &details, nil
}

// UpdateDetails sends the whole details document. Any response body is
// ignored; callers re-fetch to see the server's view.
func (r *ReceiptResource) UpdateDetails(ctx context.Context, details *model.ReceiptDetails) error {
	_, err := jsonCall(ctx, r.sender, "receipts.UpdateDetails", http.MethodPatch, receiptPath(details.ID), details)
	return err
}

func (r *ReceiptResource) Delete(ctx context.Context, receiptID int) error {
	_, err := call(ctx, r.sender, "receipts.Delete", &transport.Request{Method: http.MethodDelete, Path: receiptPath(receiptID)})
	return err
}

// Upload posts a JPEG image for server side scanning.
func (r *ReceiptResource) Upload(ctx context.Context, jpeg []byte) (model.ScanResult, error) {
	const op = "receipts.Upload"
	resp, err := call(ctx, r.sender, op, &transport.Request{
		Method:      http.MethodPost,
		Path:        "/receipts/auto",
		Body:        jpeg,
		ContentType: "image/jpeg",
	})
	if err != nil {
		return model.ScanResult{}, err
	}
	return decode[model.ScanResult](op, resp)
}
