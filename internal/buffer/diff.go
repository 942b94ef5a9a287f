package buffer

import (
	"github.com/gm3197/CSE437s-group-4/internal/model"
)

// ChangeSet is the minimal set of calls needed to bring the server in line
// with the edit copy.
type ChangeSet struct {
	// Metadata is the full edited details when any receipt level field
	// changed, nil otherwise.
	Metadata *model.ReceiptDetails
	// Created holds placeholder items in edit order.
	Created []model.ReceiptItem
	// Updated holds existing items whose description, price or category
	// changed, in edit order.
	Updated []model.ReceiptItem
}

func (c ChangeSet) Empty() bool {
	return c.Metadata == nil && len(c.Created) == 0 && len(c.Updated) == 0
}

// First returns the first item change: the first created item when there
// is one, the first updated item otherwise.
func (c ChangeSet) First() (model.ReceiptItem, bool) {
	if len(c.Created) > 0 {
		return c.Created[0], true
	}
	if len(c.Updated) > 0 {
		return c.Updated[0], true
	}
	return model.ReceiptItem{}, false
}

// Diff classifies every difference between the edit copy and the snapshot.
// It returns ErrNoChanges when they match.
func (b *Buffer) Diff() (ChangeSet, error) {
	cs := ChangeSet{}

	originals := make(map[int]model.ReceiptItem, len(b.snapshot.Items))
	for _, item := range b.snapshot.Items {
		originals[item.ID] = item
	}

	for _, item := range b.edit.Items {
		if item.IsPlaceholder() {
			cs.Created = append(cs.Created, item.Clone())
			continue
		}
		original, ok := originals[item.ID]
		if !ok {
			// Assigned a server id by a save that has not been folded into
			// the snapshot yet.
			continue
		}
		if !item.SameContent(original) {
			cs.Updated = append(cs.Updated, item.Clone())
		}
	}

	if !b.edit.SameMetadata(b.snapshot) {
		cs.Metadata = b.edit.Clone()
	}

	if cs.Empty() {
		return ChangeSet{}, ErrNoChanges
	}
	return cs, nil
}
