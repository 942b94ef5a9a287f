package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/gm3197/CSE437s-group-4/internal/buffer"
	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/repository"
)

// SaveChanges submits a change set: creates first, then item updates, then
// the receipt details, followed by one re-fetch when anything was accepted.
// A failing call does not stop the remaining ones; all failures are joined
// into the returned error and the result fields describe what did succeed.
type SaveChanges struct {
	ReceiptID int
	Changes   buffer.ChangeSet

	// Created maps each placeholder id to the id the server issued.
	Created map[int]int
	// Saved holds the accepted changes, created items carrying server ids.
	Saved buffer.ChangeSet
	// Details is the re-fetched server state, nil if no re-fetch happened
	// or it failed.
	Details *model.ReceiptDetails
}

func (a *SaveChanges) Perform(ctx context.Context, repo *repository.Repository) error {
	var errs []error
	a.Created = make(map[int]int, len(a.Changes.Created))
	a.Saved = buffer.ChangeSet{}

	for _, item := range a.Changes.Created {
		id, err := repo.Items.Create(ctx, a.ReceiptID, model.NewItemFrom(item))
		if err != nil {
			errs = append(errs, fmt.Errorf("create item %q: %w", item.Description, err))
			continue
		}
		a.Created[item.ID] = id
		saved := item.Clone()
		saved.ID = id
		a.Saved.Created = append(a.Saved.Created, saved)
	}

	for _, item := range a.Changes.Updated {
		if err := repo.Items.Update(ctx, a.ReceiptID, item); err != nil {
			errs = append(errs, fmt.Errorf("update item %d: %w", item.ID, err))
			continue
		}
		a.Saved.Updated = append(a.Saved.Updated, item.Clone())
	}

	if a.Changes.Metadata != nil {
		body := a.detailsBody()
		if err := repo.Receipts.UpdateDetails(ctx, body); err != nil {
			errs = append(errs, fmt.Errorf("update receipt %d: %w", a.ReceiptID, err))
		} else {
			a.Saved.Metadata = a.Changes.Metadata.Clone()
		}
	}

	if !a.Saved.Empty() {
		details, err := repo.Receipts.Get(ctx, a.ReceiptID)
		if err != nil {
			errs = append(errs, fmt.Errorf("refetch receipt %d: %w", a.ReceiptID, err))
		} else {
			a.Details = details
		}
	}

	return errors.Join(errs...)
}

// detailsBody is the metadata document with placeholder items swapped for
// their server ids. Placeholders whose create failed are left out.
func (a *SaveChanges) detailsBody() *model.ReceiptDetails {
	body := a.Changes.Metadata.Clone()
	body.ID = a.ReceiptID
	items := body.Items[:0]
	for _, item := range body.Items {
		if item.IsPlaceholder() {
			id, ok := a.Created[item.ID]
			if !ok {
				continue
			}
			item.ID = id
		}
		items = append(items, item)
	}
	body.Items = items
	return body
}
