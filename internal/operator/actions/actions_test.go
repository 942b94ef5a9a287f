package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gm3197/CSE437s-group-4/internal/buffer"
	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/repository/repositorytest"
)

func intPtr(v int) *int { return &v }

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func serverDetails() *model.ReceiptDetails {
	return &model.ReceiptDetails{
		ID:       42,
		Merchant: model.Merchant{Name: "Schnucks"},
		Items: []model.ReceiptItem{
			{ID: 1, Description: "Milk", Price: price("5.00")},
			{ID: 2, Description: "Bread", Price: price("3.00")},
		},
	}
}

// -- SaveChanges tests --

func TestSaveChanges_CreateThenRefetch(t *testing.T) {
	repo, mocks := repositorytest.New(t)
	ctx := context.Background()

	mocks.Items.On("Create", ctx, 42, mock.MatchedBy(func(n model.NewItem) bool {
		return n.Description == "Eggs" && n.Price.Equal(price("4"))
	})).Return(12, nil).Once()
	mocks.Receipts.On("Get", ctx, 42).Return(serverDetails(), nil).Once()

	action := &SaveChanges{
		ReceiptID: 42,
		Changes: buffer.ChangeSet{
			Created: []model.ReceiptItem{{ID: -1, Description: "Eggs", Price: price("4.00")}},
		},
	}
	require.NoError(t, action.Perform(ctx, repo))

	assert.Equal(t, map[int]int{-1: 12}, action.Created)
	require.Len(t, action.Saved.Created, 1)
	assert.Equal(t, 12, action.Saved.Created[0].ID)
	assert.NotNil(t, action.Details)
	mocks.Items.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveChanges_OrderAndMetadataBody(t *testing.T) {
	repo, mocks := repositorytest.New(t)
	ctx := context.Background()
	var calls []string

	mocks.Items.On("Create", ctx, 42, mock.Anything).Return(12, nil).
		Run(func(mock.Arguments) { calls = append(calls, "create") }).Once()
	mocks.Items.On("Update", ctx, 42, mock.MatchedBy(func(i model.ReceiptItem) bool { return i.ID == 2 })).Return(nil).
		Run(func(mock.Arguments) { calls = append(calls, "update") }).Once()
	mocks.Receipts.On("UpdateDetails", ctx, mock.MatchedBy(func(d *model.ReceiptDetails) bool {
		return d.ID == 42 && len(d.Items) == 3 && d.Items[2].ID == 12 && d.PaymentMethod == "VISA"
	})).Return(nil).Run(func(mock.Arguments) { calls = append(calls, "details") }).Once()
	mocks.Receipts.On("Get", ctx, 42).Return(serverDetails(), nil).
		Run(func(mock.Arguments) { calls = append(calls, "get") }).Once()

	metadata := serverDetails()
	metadata.PaymentMethod = "VISA"
	metadata.Items = append(metadata.Items, model.ReceiptItem{ID: -1, Description: "Eggs", Price: price("4.00")})

	action := &SaveChanges{
		ReceiptID: 42,
		Changes: buffer.ChangeSet{
			Metadata: metadata,
			Created:  []model.ReceiptItem{{ID: -1, Description: "Eggs", Price: price("4.00")}},
			Updated:  []model.ReceiptItem{{ID: 2, Description: "Bread", Price: price("4.50")}},
		},
	}
	require.NoError(t, action.Perform(ctx, repo))

	assert.Equal(t, []string{"create", "update", "details", "get"}, calls)
	assert.NotNil(t, action.Saved.Metadata)
	// The change set itself is left untouched.
	assert.Equal(t, -1, metadata.Items[2].ID)
}

func TestSaveChanges_PartialFailureContinues(t *testing.T) {
	repo, mocks := repositorytest.New(t)
	ctx := context.Background()
	offline := errors.New("offline")

	mocks.Items.On("Create", ctx, 42, mock.Anything).Return(0, offline).Once()
	mocks.Items.On("Update", ctx, 42, mock.Anything).Return(nil).Once()
	mocks.Receipts.On("UpdateDetails", ctx, mock.MatchedBy(func(d *model.ReceiptDetails) bool {
		for _, item := range d.Items {
			if item.IsPlaceholder() {
				return false
			}
		}
		return true
	})).Return(nil).Once()
	mocks.Receipts.On("Get", ctx, 42).Return(serverDetails(), nil).Once()

	metadata := serverDetails()
	metadata.Items = append(metadata.Items, model.ReceiptItem{ID: -1, Description: "Eggs"})
	action := &SaveChanges{
		ReceiptID: 42,
		Changes: buffer.ChangeSet{
			Metadata: metadata,
			Created:  []model.ReceiptItem{{ID: -1, Description: "Eggs"}},
			Updated:  []model.ReceiptItem{{ID: 2, Description: "Rye"}},
		},
	}
	err := action.Perform(ctx, repo)

	assert.ErrorIs(t, err, offline)
	assert.Empty(t, action.Created)
	assert.Len(t, action.Saved.Updated, 1)
	assert.NotNil(t, action.Saved.Metadata)
	assert.NotNil(t, action.Details)
}

func TestSaveChanges_AllFailedSkipsRefetch(t *testing.T) {
	repo, mocks := repositorytest.New(t)
	ctx := context.Background()

	mocks.Items.On("Update", ctx, 42, mock.Anything).Return(errors.New("offline")).Once()

	action := &SaveChanges{
		ReceiptID: 42,
		Changes:   buffer.ChangeSet{Updated: []model.ReceiptItem{{ID: 2}}},
	}
	assert.Error(t, action.Perform(ctx, repo))
	assert.Nil(t, action.Details)
	mocks.Receipts.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

// -- ApplyCategory tests --

func TestApplyCategory_NoShortCircuit(t *testing.T) {
	repo, mocks := repositorytest.New(t)
	ctx := context.Background()
	rejected := errors.New("rejected")

	items := []model.ReceiptItem{
		{ID: 1, Category: intPtr(5)},
		{ID: 2, Category: intPtr(5)},
		{ID: 3, Category: intPtr(5)},
		{ID: -1, Category: intPtr(5)},
	}
	mocks.Items.On("Update", ctx, 42, mock.MatchedBy(func(i model.ReceiptItem) bool { return i.ID == 1 })).Return(nil).Once()
	mocks.Items.On("Update", ctx, 42, mock.MatchedBy(func(i model.ReceiptItem) bool { return i.ID == 2 })).Return(rejected).Once()
	mocks.Items.On("Update", ctx, 42, mock.MatchedBy(func(i model.ReceiptItem) bool { return i.ID == 3 })).Return(nil).Once()
	mocks.Receipts.On("Get", ctx, 42).Return(serverDetails(), nil).Once()

	action := &ApplyCategory{ReceiptID: 42, Items: items}
	err := action.Perform(ctx, repo)

	assert.ErrorIs(t, err, rejected)
	assert.Len(t, action.Saved, 2)
	assert.Equal(t, map[int]error{2: rejected}, action.Failed)
	assert.NotNil(t, action.Details)
	mocks.Items.AssertNumberOfCalls(t, "Update", 3)
}

// -- DeleteItem tests --

func TestDeleteItem_RefetchesInsteadOfSplicing(t *testing.T) {
	repo, mocks := repositorytest.New(t)
	ctx := context.Background()

	mocks.Items.On("Delete", ctx, 42, 7).Return(nil).Once()
	mocks.Receipts.On("Get", ctx, 42).Return(serverDetails(), nil).Once()

	action := &DeleteItem{ReceiptID: 42, ItemID: 7}
	require.NoError(t, action.Perform(ctx, repo))

	assert.True(t, action.Deleted)
	assert.Equal(t, 42, action.Details.ID)
}

func TestDeleteItem_Failure(t *testing.T) {
	repo, mocks := repositorytest.New(t)
	ctx := context.Background()

	mocks.Items.On("Delete", ctx, 42, 7).Return(errors.New("forbidden")).Once()

	action := &DeleteItem{ReceiptID: 42, ItemID: 7}
	assert.Error(t, action.Perform(ctx, repo))
	assert.False(t, action.Deleted)
	assert.Nil(t, action.Details)
}

func TestDeleteItem_RefetchFailure(t *testing.T) {
	repo, mocks := repositorytest.New(t)
	ctx := context.Background()

	mocks.Items.On("Delete", ctx, 42, 7).Return(nil).Once()
	mocks.Receipts.On("Get", ctx, 42).Return(nil, errors.New("offline")).Once()

	action := &DeleteItem{ReceiptID: 42, ItemID: 7}
	assert.Error(t, action.Perform(ctx, repo))
	assert.True(t, action.Deleted)
}

// -- FetchDetails / DeleteReceipt tests --

func TestFetchDetails(t *testing.T) {
	repo, mocks := repositorytest.New(t)
	ctx := context.Background()
	mocks.Receipts.On("Get", ctx, 42).Return(serverDetails(), nil).Once()

	action := &FetchDetails{ReceiptID: 42}
	require.NoError(t, action.Perform(ctx, repo))
	assert.Len(t, action.Details.Items, 2)
}

func TestDeleteReceipt(t *testing.T) {
	repo, mocks := repositorytest.New(t)
	ctx := context.Background()
	mocks.Receipts.On("Delete", ctx, 42).Return(nil).Once()

	assert.NoError(t, (&DeleteReceipt{ReceiptID: 42}).Perform(ctx, repo))
}
