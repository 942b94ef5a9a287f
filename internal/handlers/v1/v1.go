// Package v1 holds helpers shared by the sandbox API handlers.
package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/gm3197/CSE437s-group-4/internal/sandbox"
)

// Authenticator resolves a raw session token to a user id.
type Authenticator interface {
	Authenticate(token string) (int, error)
}

// Authorize resolves the Authorization header. The token is sent as is,
// without a scheme.
func Authorize(auth Authenticator, token string) (int, error) {
	user, err := auth.Authenticate(token)
	if err != nil {
		return 0, huma.Error401Unauthorized("invalid session token")
	}
	return user, nil
}

// StoreError maps a store failure to an HTTP error.
func StoreError(message string, err error) error {
	switch {
	case errors.Is(err, sandbox.ErrNotFound):
		return huma.Error404NotFound(message, err)
	case errors.Is(err, sandbox.ErrInvalid):
		return huma.Error400BadRequest(message, err)
	case errors.Is(err, sandbox.ErrUnauthorized):
		return huma.Error401Unauthorized(message, err)
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}

// DecodeBody parses a raw JSON request body. Bodies are read raw so the
// API's own codecs (numeric money, string or object merchants) apply.
func DecodeBody[T any](raw []byte) (T, error) {
	var body T
	if len(raw) == 0 {
		return body, huma.Error400BadRequest("request body is required")
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return body, huma.Error400BadRequest("invalid request body", err)
	}
	return body, nil
}

// Money is a decimal amount that is documented and validated as a JSON
// number.
type Money struct {
	decimal.Decimal
}

// Schema implements huma.SchemaProvider.
func (Money) Schema(r huma.Registry) *huma.Schema {
	return &huma.Schema{Type: huma.TypeNumber}
}
