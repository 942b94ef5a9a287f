package model

// AuthRequest is the body of POST /auth/google/token.
type AuthRequest struct {
	IDToken string `json:"idToken"`
}

// AuthResponse carries the session token issued for a verified identity.
type AuthResponse struct {
	Session string `json:"session"`
}
