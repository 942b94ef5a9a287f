package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/repository"
)

// ApplyCategory issues one update per persisted item. Calls are independent:
// a failure is recorded and the next item is still attempted.
type ApplyCategory struct {
	ReceiptID int
	Items     []model.ReceiptItem

	Saved   []model.ReceiptItem
	Failed  map[int]error
	Details *model.ReceiptDetails
}

func (a *ApplyCategory) Perform(ctx context.Context, repo *repository.Repository) error {
	a.Failed = make(map[int]error)
	a.Saved = nil

	var errs []error
	for _, item := range a.Items {
		if item.IsPlaceholder() {
			continue
		}
		if err := repo.Items.Update(ctx, a.ReceiptID, item); err != nil {
			a.Failed[item.ID] = err
			errs = append(errs, fmt.Errorf("update item %d: %w", item.ID, err))
			continue
		}
		a.Saved = append(a.Saved, item.Clone())
	}

	if len(a.Saved) > 0 {
		details, err := repo.Receipts.Get(ctx, a.ReceiptID)
		if err != nil {
			errs = append(errs, fmt.Errorf("refetch receipt %d: %w", a.ReceiptID, err))
		} else {
			a.Details = details
		}
	}

	return errors.Join(errs...)
}
