package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gm3197/CSE437s-group-4/internal/apierr"
	"github.com/gm3197/CSE437s-group-4/internal/transport"
)

const pngMediaType = "image/png"

type IImageResource interface {
	ReceiptScan(ctx context.Context, receiptID int) ([]byte, error)
	ItemScan(ctx context.Context, receiptID, itemID int) ([]byte, error)
}

type ImageResource struct {
	sender Sender
}

func (r *ImageResource) ReceiptScan(ctx context.Context, receiptID int) ([]byte, error) {
	return r.fetch(ctx, "images.ReceiptScan", fmt.Sprintf("/receipts/%d/scan.png", receiptID))
}

func (r *ImageResource) ItemScan(ctx context.Context, receiptID, itemID int) ([]byte, error) {
	return r.fetch(ctx, "images.ItemScan", fmt.Sprintf("/receipts/%d/items/%d/scan.png", receiptID, itemID))
}

// fetch checks the media type before the status code: a response that is
// not a PNG is ErrNoData whatever its status.
func (r *ImageResource) fetch(ctx context.Context, op, path string) ([]byte, error) {
	resp, err := r.sender.Send(ctx, &transport.Request{Method: http.MethodGet, Path: path})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if mediaType := resp.MediaType(); mediaType != pngMediaType {
		return nil, fmt.Errorf("%s: %w: content type %q", op, apierr.ErrNoData, mediaType)
	}
	if err := resp.CheckStatus(op); err != nil {
		return nil, err
	}
	if len(resp.Body) == 0 {
		return nil, fmt.Errorf("%s: %w", op, apierr.ErrNoData)
	}
	return resp.Body, nil
}
