package service

import (
	"github.com/sirupsen/logrus"

	"github.com/gm3197/CSE437s-group-4/internal/dispatch"
	"github.com/gm3197/CSE437s-group-4/internal/model"
	"github.com/gm3197/CSE437s-group-4/internal/operator"
	"github.com/gm3197/CSE437s-group-4/internal/repository"
	"github.com/gm3197/CSE437s-group-4/internal/session"
)

// Service holds the client's view-model services. Unless noted otherwise,
// their methods must be called on the UI loop, and every future they return
// resolves after its result has been applied there.
type Service struct {
	Auth       *AuthService
	Receipts   *ReceiptService
	Categories *CategoryService
	Reconcile  *ReconcileService
}

// NewService wires the services together. Detail sessions publish their
// receipt's summary into the receipt list whenever they reconcile.
func NewService(
	repo *repository.Repository,
	sess *session.Session,
	loop dispatch.Dispatcher,
	ops *operator.OperatorDelegator,
	logger *logrus.Logger,
) *Service {
	receipts := NewReceiptService(repo, loop, ops, logger)
	reconcile := NewReconcileService(loop, ops, logger)
	reconcile.Subscribe(func(rs *ReceiptSession) {
		receipts.Upsert(rs.Buffer.Snapshot().Summary())
	})

	return &Service{
		Auth:       NewAuthService(repo, sess, logger),
		Receipts:   receipts,
		Categories: NewCategoryService(repo, loop, logger),
		Reconcile:  reconcile,
	}
}

func cloneReceipts(receipts []model.Receipt) []model.Receipt {
	if receipts == nil {
		return nil
	}
	return append([]model.Receipt(nil), receipts...)
}
