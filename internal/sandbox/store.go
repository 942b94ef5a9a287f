// Package sandbox is an in-memory implementation of the receipt API used
// for local development and end-to-end tests.
package sandbox

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/gm3197/CSE437s-group-4/internal/model"
)

var (
	ErrUnauthorized = errors.New("sandbox: unauthorized")
	ErrNotFound     = errors.New("sandbox: not found")
	ErrInvalid      = errors.New("sandbox: invalid request")
)

type receiptRecord struct {
	owner   int
	details model.ReceiptDetails
}

type categoryRecord struct {
	owner    int
	category model.Category
}

// Store holds every user's data. It is safe for concurrent use.
type Store struct {
	mutex sync.Mutex
	now   func() time.Time

	users      map[string]int
	sessions   map[string]int
	receipts   map[int]*receiptRecord
	categories map[int]*categoryRecord

	nextUser     int
	nextReceipt  int
	nextItem     int
	nextCategory int
}

func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock returns a store whose "current month" follows now.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		now:        now,
		users:      make(map[string]int),
		sessions:   make(map[string]int),
		receipts:   make(map[int]*receiptRecord),
		categories: make(map[int]*categoryRecord),
	}
}

// Login accepts any non-empty identity token. The same token always maps to
// the same user; every call issues a fresh session token.
func (s *Store) Login(idToken string) (string, error) {
	if idToken == "" {
		return "", fmt.Errorf("%w: empty identity token", ErrUnauthorized)
	}

	session, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	user, ok := s.users[idToken]
	if !ok {
		s.nextUser++
		user = s.nextUser
		s.users[idToken] = user
	}
	s.sessions[session.String()] = user
	return session.String(), nil
}

// Authenticate resolves a session token to its user.
func (s *Store) Authenticate(token string) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	user, ok := s.sessions[token]
	if !ok || token == "" {
		return 0, ErrUnauthorized
	}
	return user, nil
}

// receipt must be called with the mutex held.
func (s *Store) receipt(user, receiptID int) (*receiptRecord, error) {
	record, ok := s.receipts[receiptID]
	if !ok || record.owner != user {
		return nil, fmt.Errorf("%w: receipt %d", ErrNotFound, receiptID)
	}
	return record, nil
}
