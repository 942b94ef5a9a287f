package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/gm3197/CSE437s-group-4/internal/handlers/v1"
	"github.com/gm3197/CSE437s-group-4/internal/logging"
	"github.com/gm3197/CSE437s-group-4/internal/model"
)

// GoogleTokenInput is the Huma input for exchanging an identity token.
type GoogleTokenInput struct {
	Body GoogleTokenBody
}

// GoogleTokenBody is the request body for the token exchange.
type GoogleTokenBody struct {
	IDToken string `json:"idToken" minLength:"1" doc:"Google identity token"`
}

// GoogleTokenOutput carries the issued session token.
type GoogleTokenOutput struct {
	Body model.AuthResponse
}

// sessionIssuer is the interface for issuing session tokens.
type sessionIssuer interface {
	Login(idToken string) (string, error)
}

// GoogleTokenHandler handles POST /auth/google/token.
type GoogleTokenHandler struct {
	Sessions sessionIssuer
}

// NewGoogleTokenHandler creates a new GoogleTokenHandler.
func NewGoogleTokenHandler(sessions sessionIssuer) *GoogleTokenHandler {
	return &GoogleTokenHandler{Sessions: sessions}
}

// Register registers the token exchange endpoint with the Huma API.
func (h *GoogleTokenHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "exchange-google-token",
		Method:      http.MethodPost,
		Path:        "/auth/google/token",
		Summary:     "Exchange a Google identity token",
		Description: "Verifies a Google identity token and returns a session token for the Authorization header.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *GoogleTokenHandler) handle(ctx context.Context, input *GoogleTokenInput) (*GoogleTokenOutput, error) {
	session, err := h.Sessions.Login(input.Body.IDToken)
	if err != nil {
		return nil, v1.StoreError("failed to verify identity token", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("login", true)
	}
	return &GoogleTokenOutput{Body: model.AuthResponse{Session: session}}, nil
}
