package actions

import (
	"context"

	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/repository"
)

type FetchDetails struct {
	ReceiptID int

	Details *model.ReceiptDetails
}

func (a *FetchDetails) Perform(ctx context.Context, repo *repository.Repository) error {
	details, err := repo.Receipts.Get(ctx, a.ReceiptID)
	if err != nil {
		return err
	}
	a.Details = details
	return nil
}
