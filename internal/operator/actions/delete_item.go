package actions

import (
	"context"
	"fmt"

	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/repository"
)

// DeleteItem removes an item on the server and re-fetches the receipt. The
// item only disappears locally through the re-fetched details.
type DeleteItem struct {
	ReceiptID int
	ItemID    int

	Deleted bool
	Details *model.ReceiptDetails
}

func (a *DeleteItem) Perform(ctx context.Context, repo *repository.Repository) error {
	if err := repo.Items.Delete(ctx, a.ReceiptID, a.ItemID); err != nil {
		return err
	}
	a.Deleted = true

	details, err := repo.Receipts.Get(ctx, a.ReceiptID)
	if err != nil {
		return fmt.Errorf("refetch receipt %d: %w", a.ReceiptID, err)
	}
	a.Details = details
	return nil
}

type DeleteReceipt struct {
	ReceiptID int
}

func (a *DeleteReceipt) Perform(ctx context.Context, repo *repository.Repository) error {
	return repo.Receipts.Delete(ctx, a.ReceiptID)
}
