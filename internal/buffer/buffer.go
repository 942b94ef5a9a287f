// Package buffer holds the editable local copy of one receipt's details
// alongside the last server snapshot it was derived from.
//
// A Buffer is not safe for concurrent use. It is owned by the UI loop.
package buffer

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gm3197/CSE437s-group-4/internal/model"
)

type State int

const (
	// Clean means the edit copy equals the snapshot.
	Clean State = iota
	// Dirty means at least one field differs from the snapshot.
	Dirty
	// SaveFailed means the last save did not fully succeed. Unsaved edits
	// are kept and a retry is available.
	SaveFailed
)

func (s State) String() string {
	switch s {
	case Clean:
		return "clean"
	case Dirty:
		return "dirty"
	case SaveFailed:
		return "save-failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	ErrNoChanges      = errors.New("no changes found")
	ErrUnknownItem    = errors.New("unknown item")
	ErrNotPlaceholder = errors.New("item already exists on the server")
)

type Buffer struct {
	snapshot        *model.ReceiptDetails
	edit            *model.ReceiptDetails
	state           State
	err             error
	nextPlaceholder int
}

func New(details *model.ReceiptDetails) *Buffer {
	b := &Buffer{nextPlaceholder: -1}
	b.Replace(details)
	return b
}

func (b *Buffer) ReceiptID() int {
	return b.snapshot.ID
}

func (b *Buffer) State() State {
	return b.state
}

// Err is the error recorded by the last failed save, if any.
func (b *Buffer) Err() error {
	return b.err
}

// Snapshot returns a copy of the last known server state.
func (b *Buffer) Snapshot() *model.ReceiptDetails {
	return b.snapshot.Clone()
}

// Current returns a copy of the edited details.
func (b *Buffer) Current() *model.ReceiptDetails {
	return b.edit.Clone()
}

// Changed reports whether the edit copy differs from the snapshot.
func (b *Buffer) Changed() bool {
	cs, err := b.Diff()
	return err == nil && !cs.Empty()
}

// touch recomputes the state after a local mutation.
func (b *Buffer) touch() {
	b.err = nil
	if b.Changed() {
		b.state = Dirty
		return
	}
	b.state = Clean
}

func (b *Buffer) SetMerchant(merchant model.Merchant) {
	b.edit.Merchant = merchant
	b.touch()
}

func (b *Buffer) SetDate(date string) {
	b.edit.Date = date
	b.touch()
}

func (b *Buffer) SetPaymentMethod(method string) {
	b.edit.PaymentMethod = method
	b.touch()
}

func (b *Buffer) SetTax(tax decimal.Decimal) {
	b.edit.Tax = tax
	b.touch()
}

func (b *Buffer) SetClean(clean bool) {
	b.edit.Clean = clean
	b.touch()
}

// AddItem appends a local item and returns its placeholder id. Placeholder
// ids count down from -1 and are never reused by the same buffer.
func (b *Buffer) AddItem(description string, price decimal.Decimal, category *int) int {
	id := b.nextPlaceholder
	b.nextPlaceholder--

	auto := false
	b.edit.Items = append(b.edit.Items, model.ReceiptItem{
		ID:          id,
		Description: description,
		Price:       price,
		Category:    copyInt(category),
		Auto:        &auto,
	})
	b.touch()
	return id
}

// UpdateItem replaces the editable fields of the item with item.ID.
func (b *Buffer) UpdateItem(item model.ReceiptItem) error {
	idx := indexOf(b.edit.Items, item.ID)
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownItem, item.ID)
	}
	current := &b.edit.Items[idx]
	current.Description = item.Description
	current.Price = item.Price
	current.Category = copyInt(item.Category)
	b.touch()
	return nil
}

// SetCategoryAll assigns category to every item.
func (b *Buffer) SetCategoryAll(category *int) {
	for i := range b.edit.Items {
		b.edit.Items[i].Category = copyInt(category)
	}
	b.touch()
}

// DiscardItem drops a placeholder item. Items that exist on the server are
// only removed by a server delete followed by a re-fetch.
func (b *Buffer) DiscardItem(id int) error {
	idx := indexOf(b.edit.Items, id)
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownItem, id)
	}
	if !b.edit.Items[idx].IsPlaceholder() {
		return fmt.Errorf("%w: %d", ErrNotPlaceholder, id)
	}
	b.edit.Items = append(b.edit.Items[:idx], b.edit.Items[idx+1:]...)
	b.touch()
	return nil
}

// Replace adopts server state wholesale, dropping any local edits.
func (b *Buffer) Replace(details *model.ReceiptDetails) {
	b.snapshot = details.Clone()
	b.edit = details.Clone()
	b.state = Clean
	b.err = nil
}

// Revert throws away local edits and returns to the snapshot.
func (b *Buffer) Revert() {
	b.Replace(b.snapshot)
}

// AssignID swaps a placeholder id for the id the server issued.
func (b *Buffer) AssignID(placeholder, id int) error {
	idx := indexOf(b.edit.Items, placeholder)
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownItem, placeholder)
	}
	b.edit.Items[idx].ID = id
	return nil
}

// MarkSaved records changes the server acknowledged by folding them into
// the snapshot. Created items must already carry their server ids.
func (b *Buffer) MarkSaved(saved ChangeSet) {
	if saved.Metadata != nil {
		copyMetadata(b.snapshot, saved.Metadata)
	}
	for _, item := range saved.Updated {
		if idx := indexOf(b.snapshot.Items, item.ID); idx >= 0 {
			b.snapshot.Items[idx] = item.Clone()
		}
	}
	for _, item := range saved.Created {
		if item.IsPlaceholder() || indexOf(b.snapshot.Items, item.ID) >= 0 {
			continue
		}
		b.snapshot.Items = append(b.snapshot.Items, item.Clone())
	}
}

// Rebase adopts server as the new snapshot and replays the edits that are
// not reflected in the current snapshot on top of it. Metadata is replayed
// as a group; items are replayed whole. Items the server no longer has are
// dropped, placeholders are kept.
func (b *Buffer) Rebase(server *model.ReceiptDetails) {
	pending, err := b.Diff()
	if errors.Is(err, ErrNoChanges) {
		b.Replace(server)
		return
	}

	edit := server.Clone()
	if pending.Metadata != nil {
		copyMetadata(edit, pending.Metadata)
	}
	for _, item := range pending.Updated {
		if idx := indexOf(edit.Items, item.ID); idx >= 0 {
			edit.Items[idx] = item.Clone()
		}
	}
	for _, item := range pending.Created {
		edit.Items = append(edit.Items, item.Clone())
	}

	b.snapshot = server.Clone()
	b.edit = edit
	b.touch()
}

// Fail records a save error. The buffer moves to SaveFailed while unsaved
// edits remain.
func (b *Buffer) Fail(err error) {
	if err == nil {
		return
	}
	b.err = err
	if b.Changed() {
		b.state = SaveFailed
	}
}

func copyMetadata(dst, src *model.ReceiptDetails) {
	dst.Merchant = src.Merchant
	dst.Date = src.Date
	dst.PaymentMethod = src.PaymentMethod
	dst.Tax = src.Tax
	dst.Clean = src.Clean
}

func indexOf(items []model.ReceiptItem, id int) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
