// Package repository exposes typed operations over the receipt API's
// resources. It owns no state; every call is one transport round trip.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gm3197/CSE437s-group-4/internal/apierr"
	"github.com/gm3197/CSE437s-group-4/internal/transport"
)

// Sender is the transport seen by the repository.
type Sender interface {
	Send(ctx context.Context, req *transport.Request) (*transport.Response, error)
}

type Repository struct {
	Receipts   IReceiptResource
	Items      IItemResource
	Categories ICategoryResource
	Images     IImageResource
	Auth       IAuthResource
}

func New(sender Sender) *Repository {
	return &Repository{
		Receipts:   &ReceiptResource{sender: sender},
		Items:      &ItemResource{sender: sender},
		Categories: &CategoryResource{sender: sender},
		Images:     &ImageResource{sender: sender},
		Auth:       &AuthResource{sender: sender},
	}
}

// call sends req and gates the response on its status code.
func call(ctx context.Context, sender Sender, op string, req *transport.Request) (*transport.Response, error) {
	resp, err := sender.Send(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := resp.CheckStatus(op); err != nil {
		return nil, err
	}
	return resp, nil
}

func jsonCall(ctx context.Context, sender Sender, op, method, path string, body interface{}) (*transport.Response, error) {
	req, err := transport.JSONRequest(method, path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return call(ctx, sender, op, req)
}

// decode parses a body that must be present.
func decode[T any](op string, resp *transport.Response) (T, error) {
	var out T
	if len(resp.Body) == 0 {
		return out, fmt.Errorf("%s: %w", op, apierr.ErrNoData)
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return out, &apierr.DecodeError{Op: op, Err: err}
	}
	return out, nil
}
