// Package repositorytest provides testify mocks for the repository
// resources.
package repositorytest

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/repository"
)

type Mocks struct {
	Receipts   *MockReceipts
	Items      *MockItems
	Categories *MockCategories
	Images     *MockImages
	Auth       *MockAuth
}

// New returns a repository backed by mocks whose expectations are asserted
// when the test ends.
func New(t *testing.T) (*repository.Repository, *Mocks) {
	t.Helper()
	m := &Mocks{
		Receipts:   &MockReceipts{},
		Items:      &MockItems{},
		Categories: &MockCategories{},
		Images:     &MockImages{},
		Auth:       &MockAuth{},
	}
	for _, mm := range []*mock.Mock{&m.Receipts.Mock, &m.Items.Mock, &m.Categories.Mock, &m.Images.Mock, &m.Auth.Mock} {
		mm.Test(t)
		t.Cleanup(func() { mm.AssertExpectations(t) })
	}

	return &repository.Repository{
		Receipts:   m.Receipts,
		Items:      m.Items,
		Categories: m.Categories,
		Images:     m.Images,
		Auth:       m.Auth,
	}, m
}

type MockReceipts struct {
	mock.Mock
}

func (m *MockReceipts) List(ctx context.Context) ([]model.Receipt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Receipt), args.Error(1)
}

func (m *MockReceipts) Get(ctx context.Context, receiptID int) (*model.ReceiptDetails, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Hand out a copy so callers cannot mutate the fixture.
	return args.Get(0).(*model.ReceiptDetails).Clone(), args.Error(1)
}

func (m *MockReceipts) UpdateDetails(ctx context.Context, details *model.ReceiptDetails) error {
	return m.Called(ctx, details).Error(0)
}

func (m *MockReceipts) Delete(ctx context.Context, receiptID int) error {
	return m.Called(ctx, receiptID).Error(0)
}

func (m *MockReceipts) Upload(ctx context.Context, jpeg []byte) (model.ScanResult, error) {
	args := m.Called(ctx, jpeg)
	return args.Get(0).(model.ScanResult), args.Error(1)
}

type MockItems struct {
	mock.Mock
}

func (m *MockItems) Create(ctx context.Context, receiptID int, item model.NewItem) (int, error) {
	args := m.Called(ctx, receiptID, item)
	return args.Int(0), args.Error(1)
}

func (m *MockItems) Update(ctx context.Context, receiptID int, item model.ReceiptItem) error {
	return m.Called(ctx, receiptID, item).Error(0)
}

func (m *MockItems) Delete(ctx context.Context, receiptID, itemID int) error {
	return m.Called(ctx, receiptID, itemID).Error(0)
}

type MockCategories struct {
	mock.Mock
}

func (m *MockCategories) List(ctx context.Context, year, month *int) ([]model.Category, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategories) Create(ctx context.Context, name string, monthlyGoal decimal.Decimal) (int, error) {
	args := m.Called(ctx, name, monthlyGoal)
	return args.Int(0), args.Error(1)
}

func (m *MockCategories) Delete(ctx context.Context, categoryID int) error {
	return m.Called(ctx, categoryID).Error(0)
}

type MockImages struct {
	mock.Mock
}

func (m *MockImages) ReceiptScan(ctx context.Context, receiptID int) ([]byte, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockImages) ItemScan(ctx context.Context, receiptID, itemID int) ([]byte, error) {
	args := m.Called(ctx, receiptID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockAuth struct {
	mock.Mock
}

func (m *MockAuth) ExchangeGoogleToken(ctx context.Context, idToken string) (string, error) {
	args := m.Called(ctx, idToken)
	return args.String(0), args.Error(1)
}
