package service

import (
	"context"
	"errors"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/gm3197/CSE437s-group-4/internal/buffer"
	"github.com/gm3197/CSE437s-group-4/internal/dispatch"
	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/operator"
	"github.com/gm3197/CSE437s-group-4/internal/operator/actions"
)

var ErrSaveInProgress = errors.New("save already in progress")

// ReceiptSession is one open receipt detail view. All fields are owned by
// the UI loop.
type ReceiptSession struct {
	ID     int
	Buffer *buffer.Buffer

	saving bool
	// issued is the sequence number of the newest round trip started;
	// applied is the newest whose server state was adopted.
	issued  uint64
	applied uint64
}

func (s *ReceiptSession) Saving() bool {
	return s.saving
}

func (s *ReceiptSession) next() uint64 {
	s.issued++
	return s.issued
}

type SaveResult struct {
	// Created maps placeholder ids to server ids.
	Created map[int]int
	Saved   buffer.ChangeSet
}

type CategoryResult struct {
	// Failed holds the per-item error of every update the server refused.
	Failed map[int]error
}

// ReconcileService drives detail sessions: it turns buffer diffs into
// repository calls on the receipt's operator lane and folds the re-fetched
// server state back into the buffer.
type ReconcileService struct {
	loop        dispatch.Dispatcher
	ops         *operator.OperatorDelegator
	logger      *logrus.Logger
	subscribers []func(*ReceiptSession)
}

func NewReconcileService(loop dispatch.Dispatcher, ops *operator.OperatorDelegator, logger *logrus.Logger) *ReconcileService {
	return &ReconcileService{
		loop:   loop,
		ops:    ops,
		logger: logger,
	}
}

// Subscribe registers fn to run on the loop after a session changes.
func (r *ReconcileService) Subscribe(fn func(*ReceiptSession)) {
	r.subscribers = append(r.subscribers, fn)
}

func (r *ReconcileService) notify(s *ReceiptSession) {
	for _, fn := range r.subscribers {
		fn(s)
	}
}

// process runs action on the receipt's lane. Issued operations are not
// cancellable, so cancellation of ctx is dropped.
func (r *ReconcileService) process(ctx context.Context, receiptID int, action actions.IAction) error {
	return r.ops.Process(context.WithoutCancel(ctx), receiptID, action)
}

// adopt replaces the buffer's server state unless a newer round trip has
// already been applied.
func (r *ReconcileService) adopt(s *ReceiptSession, seq uint64, details *model.ReceiptDetails) {
	if seq <= s.applied {
		r.logger.WithFields(logrus.Fields{
			"receipt_id": s.ID,
			"seq":        seq,
			"applied":    s.applied,
		}).Debug("ReconcileService.adopt.Stale")
		return
	}
	s.applied = seq
	s.Buffer.Rebase(details)
}

// Open fetches a receipt and starts a detail session for it.
func (r *ReconcileService) Open(ctx context.Context, receiptID int) *dispatch.Future[*ReceiptSession] {
	action := &actions.FetchDetails{ReceiptID: receiptID}

	return dispatch.Submit(r.loop, func() (*ReceiptSession, error) {
		return nil, r.process(ctx, receiptID, action)
	}, func(_ *ReceiptSession, err error) (*ReceiptSession, error) {
		if err != nil {
			r.logger.WithError(err).WithField("receipt_id", receiptID).Error("ReconcileService.Open.Error")
			return nil, err
		}
		s := &ReceiptSession{ID: receiptID, Buffer: buffer.New(action.Details)}
		r.notify(s)
		return s, nil
	})
}

// Save submits everything that differs from the server snapshot. It fails
// immediately with buffer.ErrNoChanges when there is nothing to send and
// with ErrSaveInProgress while an earlier save has not finished.
func (r *ReconcileService) Save(ctx context.Context, s *ReceiptSession) *dispatch.Future[SaveResult] {
	if s.saving {
		return dispatch.Resolved(SaveResult{}, ErrSaveInProgress)
	}
	changes, err := s.Buffer.Diff()
	if err != nil {
		return dispatch.Resolved(SaveResult{}, err)
	}

	if r.logger.IsLevelEnabled(logrus.DebugLevel) {
		r.logger.WithField("receipt_id", s.ID).Debugf("ReconcileService.Save.Changes %s", spew.Sdump(changes))
	}

	s.saving = true
	seq := s.next()
	action := &actions.SaveChanges{ReceiptID: s.ID, Changes: changes}

	return dispatch.Submit(r.loop, func() (SaveResult, error) {
		err := r.process(ctx, s.ID, action)
		return SaveResult{Created: action.Created, Saved: action.Saved}, err
	}, func(result SaveResult, err error) (SaveResult, error) {
		s.saving = false

		for placeholder, id := range result.Created {
			if assignErr := s.Buffer.AssignID(placeholder, id); assignErr != nil {
				// Discarded while the create was in flight; the server copy
				// will arrive with the re-fetch.
				r.logger.WithError(assignErr).WithField("receipt_id", s.ID).Warn("ReconcileService.Save.AssignID")
			}
		}
		s.Buffer.MarkSaved(result.Saved)
		if action.Details != nil {
			r.adopt(s, seq, action.Details)
		}

		if err != nil {
			s.Buffer.Fail(err)
			r.logger.WithError(err).WithField("receipt_id", s.ID).Error("ReconcileService.Save.Error")
		}
		r.notify(s)
		return result, err
	})
}

// ApplyCategory sets category on every item locally, then updates each
// persisted item on the server one call at a time. A refused item does not
// stop the rest.
func (r *ReconcileService) ApplyCategory(ctx context.Context, s *ReceiptSession, category *int) *dispatch.Future[CategoryResult] {
	s.Buffer.SetCategoryAll(category)
	r.notify(s)

	seq := s.next()
	action := &actions.ApplyCategory{ReceiptID: s.ID, Items: s.Buffer.Current().Items}

	return dispatch.Submit(r.loop, func() (CategoryResult, error) {
		err := r.process(ctx, s.ID, action)
		return CategoryResult{Failed: action.Failed}, err
	}, func(result CategoryResult, err error) (CategoryResult, error) {
		s.Buffer.MarkSaved(buffer.ChangeSet{Updated: action.Saved})
		if action.Details != nil {
			r.adopt(s, seq, action.Details)
		}

		if err != nil {
			s.Buffer.Fail(err)
			r.logger.WithError(err).WithFields(logrus.Fields{
				"receipt_id": s.ID,
				"failed":     len(result.Failed),
			}).Error("ReconcileService.ApplyCategory.Error")
		}
		r.notify(s)
		return result, err
	})
}

// DeleteItem deletes an item on the server and re-fetches the receipt. A
// placeholder item is simply discarded.
func (r *ReconcileService) DeleteItem(ctx context.Context, s *ReceiptSession, itemID int) *dispatch.Future[struct{}] {
	if itemID <= 0 {
		err := s.Buffer.DiscardItem(itemID)
		if err == nil {
			r.notify(s)
		}
		return dispatch.Resolved(struct{}{}, err)
	}

	seq := s.next()
	action := &actions.DeleteItem{ReceiptID: s.ID, ItemID: itemID}

	return dispatch.Submit(r.loop, func() (struct{}, error) {
		return struct{}{}, r.process(ctx, s.ID, action)
	}, func(_ struct{}, err error) (struct{}, error) {
		if action.Details != nil {
			r.adopt(s, seq, action.Details)
		}
		if err != nil {
			r.logger.WithError(err).WithFields(logrus.Fields{
				"receipt_id": s.ID,
				"item_id":    itemID,
				"deleted":    action.Deleted,
			}).Error("ReconcileService.DeleteItem.Error")
		}
		r.notify(s)
		return struct{}{}, err
	})
}

// Refresh re-fetches the receipt, keeping edits not yet saved.
func (r *ReconcileService) Refresh(ctx context.Context, s *ReceiptSession) *dispatch.Future[*model.ReceiptDetails] {
	seq := s.next()
	action := &actions.FetchDetails{ReceiptID: s.ID}

	return dispatch.Submit(r.loop, func() (*model.ReceiptDetails, error) {
		return nil, r.process(ctx, s.ID, action)
	}, func(_ *model.ReceiptDetails, err error) (*model.ReceiptDetails, error) {
		if err != nil {
			r.logger.WithError(err).WithField("receipt_id", s.ID).Error("ReconcileService.Refresh.Error")
			return nil, err
		}
		r.adopt(s, seq, action.Details)
		r.notify(s)
		return s.Buffer.Current(), nil
	})
}

// Revert drops unsaved edits.
func (r *ReconcileService) Revert(s *ReceiptSession) {
	s.Buffer.Revert()
	r.notify(s)
}
