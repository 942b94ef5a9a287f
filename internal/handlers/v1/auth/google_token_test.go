package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/sandbox"
)

type mockSessionIssuer struct {
	mock.Mock
}

func (m *mockSessionIssuer) Login(idToken string) (string, error) {
	args := m.Called(idToken)
	return args.String(0), args.Error(1)
}

func newTestAPI(t *testing.T, sessions sessionIssuer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGoogleTokenHandler(sessions).Register(api)
	return api
}

func TestHTTP_GoogleToken_Success(t *testing.T) {
	issuer := new(mockSessionIssuer)
	issuer.On("Login", "google-id").Return("SESSION", nil)

	resp := newTestAPI(t, issuer).Post("/auth/google/token", model.AuthRequest{IDToken: "google-id"})

	require.Equal(t, http.StatusOK, resp.Code)
	var body model.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "SESSION", body.Session)
	issuer.AssertExpectations(t)
}

func TestHTTP_GoogleToken_MissingToken(t *testing.T) {
	issuer := new(mockSessionIssuer)

	resp := newTestAPI(t, issuer).Post("/auth/google/token", model.AuthRequest{})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	issuer.AssertNotCalled(t, "Login", mock.Anything)
}

func TestHTTP_GoogleToken_MalformedBody(t *testing.T) {
	issuer := new(mockSessionIssuer)

	resp := newTestAPI(t, issuer).Post("/auth/google/token", strings.NewReader("{"))

	assert.GreaterOrEqual(t, resp.Code, http.StatusBadRequest)
	assert.Less(t, resp.Code, http.StatusInternalServerError)
	issuer.AssertNotCalled(t, "Login", mock.Anything)
}

func TestHTTP_GoogleToken_MissingField(t *testing.T) {
	issuer := new(mockSessionIssuer)

	resp := newTestAPI(t, issuer).Post("/auth/google/token", map[string]any{"token": "google-id"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	issuer.AssertNotCalled(t, "Login", mock.Anything)
}

func TestHTTP_GoogleToken_Rejected(t *testing.T) {
	issuer := new(mockSessionIssuer)
	issuer.On("Login", "forged").Return("", errors.Join(sandbox.ErrUnauthorized, errors.New("bad signature")))

	resp := newTestAPI(t, issuer).Post("/auth/google/token", model.AuthRequest{IDToken: "forged"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
