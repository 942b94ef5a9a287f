// Package session owns the device's authentication state. The transport
// reads the token from here instead of from ambient storage.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/gm3197/CSE437s-group-4/internal/storage"
)

type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Session is safe for concurrent use. The token is persisted so it survives
// restarts and is cleared only by Logout.
type Session struct {
	mutex  sync.RWMutex
	values storage.IValuesTable
	token  string
	email  string
}

// New restores the persisted session, if any.
func New(ctx context.Context, values storage.IValuesTable) (*Session, error) {
	s := &Session{values: values}

	token, ok, err := values.Get(ctx, storage.KeySessionToken)
	if err != nil {
		return nil, fmt.Errorf("failed to load session token: %w", err)
	}
	if ok {
		s.token = token
	}

	email, ok, err := values.Get(ctx, storage.KeyUserEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to load user email: %w", err)
	}
	if ok {
		s.email = email
	}

	return s, nil
}

// Token returns the session token when authenticated.
func (s *Session) Token() (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.token, s.token != ""
}

func (s *Session) State() State {
	if _, ok := s.Token(); ok {
		return Authenticated
	}
	return Anonymous
}

func (s *Session) Email() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.email
}

// Login persists token and moves the session to Authenticated.
func (s *Session) Login(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("session: empty token")
	}
	if err := s.values.Put(ctx, storage.KeySessionToken, token); err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}

	s.mutex.Lock()
	s.token = token
	s.mutex.Unlock()
	return nil
}

// SetEmail remembers the address shown on the settings screen.
func (s *Session) SetEmail(ctx context.Context, email string) error {
	if err := s.values.Put(ctx, storage.KeyUserEmail, email); err != nil {
		return fmt.Errorf("failed to store user email: %w", err)
	}

	s.mutex.Lock()
	s.email = email
	s.mutex.Unlock()
	return nil
}

// Logout clears the persisted token. The in-memory state is cleared even
// when the store fails, so the device never keeps acting as the old user.
func (s *Session) Logout(ctx context.Context) error {
	s.mutex.Lock()
	s.token = ""
	s.email = ""
	s.mutex.Unlock()

	if err := s.values.Delete(ctx, storage.KeySessionToken); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	if err := s.values.Delete(ctx, storage.KeyUserEmail); err != nil {
		return fmt.Errorf("failed to clear user email: %w", err)
	}
	return nil
}
