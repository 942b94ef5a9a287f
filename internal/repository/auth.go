package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gm3197/CSE437s-group-4/internal/apierr"
	"github.com/gm3197/CSE437s-group-4/internal/model"
)

type IAuthResource interface {
	ExchangeGoogleToken(ctx context.Context, idToken string) (string, error)
}

type AuthResource struct {
	sender Sender
}

// ExchangeGoogleToken trades a Google identity token for a session token.
func (r *AuthResource) ExchangeGoogleToken(ctx context.Context, idToken string) (string, error) {
	const op = "auth.ExchangeGoogleToken"
	resp, err := jsonCall(ctx, r.sender, op, http.MethodPost, "/auth/google/token", model.AuthRequest{IDToken: idToken})
	if err != nil {
		return "", err
	}
	auth, err := decode[model.AuthResponse](op, resp)
	if err != nil {
		return "", err
	}
	if auth.Session == "" {
		return "", fmt.Errorf("%s: %w", op, apierr.ErrNoData)
	}
	return auth.Session, nil
}
