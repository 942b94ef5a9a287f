package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/gm3197/CSE437s-group-4/internal/dispatch"
	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/operator"
	"github.com/gm3197/CSE437s-group-4/internal/operator/actions"
	"github.com/gm3197/CSE437s-group-4/internal/repository"
)

// ReceiptService owns the receipt list shown on the dashboard.
type ReceiptService struct {
	repo     *repository.Repository
	loop     dispatch.Dispatcher
	ops      *operator.OperatorDelegator
	logger   *logrus.Logger
	receipts []model.Receipt
}

func NewReceiptService(repo *repository.Repository, loop dispatch.Dispatcher, ops *operator.OperatorDelegator, logger *logrus.Logger) *ReceiptService {
	return &ReceiptService{
		repo:   repo,
		loop:   loop,
		ops:    ops,
		logger: logger,
	}
}

// Receipts returns a copy of the current list.
func (s *ReceiptService) Receipts() []model.Receipt {
	return cloneReceipts(s.receipts)
}

// Fetch replaces the list with the server's.
func (s *ReceiptService) Fetch(ctx context.Context) *dispatch.Future[[]model.Receipt] {
	return dispatch.Submit(s.loop, func() ([]model.Receipt, error) {
		return s.repo.Receipts.List(ctx)
	}, s.applyList("Fetch"))
}

func (s *ReceiptService) applyList(op string) func([]model.Receipt, error) ([]model.Receipt, error) {
	return func(receipts []model.Receipt, err error) ([]model.Receipt, error) {
		if err != nil {
			s.logger.WithError(err).Errorf("ReceiptService.%s.Error", op)
			return nil, err
		}
		s.receipts = receipts
		return cloneReceipts(receipts), nil
	}
}

// Delete removes a receipt on the server, then from the list. The call goes
// through the receipt's lane so it queues behind in-flight edits.
func (s *ReceiptService) Delete(ctx context.Context, receiptID int) *dispatch.Future[[]model.Receipt] {
	return dispatch.Submit(s.loop, func() ([]model.Receipt, error) {
		return nil, s.ops.Process(context.WithoutCancel(ctx), receiptID, &actions.DeleteReceipt{ReceiptID: receiptID})
	}, func(_ []model.Receipt, err error) ([]model.Receipt, error) {
		if err != nil {
			s.logger.WithError(err).WithField("receipt_id", receiptID).Error("ReceiptService.Delete.Error")
			return nil, err
		}
		kept := s.receipts[:0]
		for _, receipt := range s.receipts {
			if receipt.ID != receiptID {
				kept = append(kept, receipt)
			}
		}
		s.receipts = kept
		return cloneReceipts(kept), nil
	})
}

// Upload sends a JPEG scan. When the server accepts it the list is
// re-fetched so the new receipt shows up.
func (s *ReceiptService) Upload(ctx context.Context, jpeg []byte) *dispatch.Future[model.ScanResult] {
	var refreshed []model.Receipt
	var refreshErr error

	return dispatch.Submit(s.loop, func() (model.ScanResult, error) {
		result, err := s.repo.Receipts.Upload(ctx, jpeg)
		if err != nil || !result.Success {
			return result, err
		}
		refreshed, refreshErr = s.repo.Receipts.List(ctx)
		return result, nil
	}, func(result model.ScanResult, err error) (model.ScanResult, error) {
		if err != nil {
			s.logger.WithError(err).Error("ReceiptService.Upload.Error")
			return result, err
		}
		if !result.Success {
			s.logger.Warn("ReceiptService.Upload.Rejected")
			return result, nil
		}
		if refreshErr != nil {
			s.logger.WithError(refreshErr).Error("ReceiptService.Upload.RefreshError")
			return result, refreshErr
		}
		s.receipts = refreshed
		return result, nil
	})
}

// Upsert inserts or replaces the summary for one receipt.
func (s *ReceiptService) Upsert(summary model.Receipt) {
	for i, receipt := range s.receipts {
		if receipt.ID == summary.ID {
			s.receipts[i] = summary
			return
		}
	}
	s.receipts = append(s.receipts, summary)
}

// ScanImage returns the original scan. The result does not touch UI state,
// so it may be awaited from any goroutine.
func (s *ReceiptService) ScanImage(ctx context.Context, receiptID int) *dispatch.Future[[]byte] {
	return dispatch.Submit(s.loop, func() ([]byte, error) {
		return s.repo.Images.ReceiptScan(ctx, receiptID)
	}, nil)
}

// ItemImage returns the cropped scan of one item.
func (s *ReceiptService) ItemImage(ctx context.Context, receiptID, itemID int) *dispatch.Future[[]byte] {
	return dispatch.Submit(s.loop, func() ([]byte, error) {
		return s.repo.Images.ItemScan(ctx, receiptID, itemID)
	}, nil)
}
