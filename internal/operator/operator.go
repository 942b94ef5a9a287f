package operator

import (
	"context"

	"github.com/gm3197/CSE437s-group-4/internal/operator/actions"
	"github.com/gm3197/CSE437s-group-4/internal/repository"
)

// Operator is the worker behind one lane. It runs items in arrival order.
type Operator struct {
	repo  *repository.Repository
	queue chan ActionItem
}

func NewOperator(repo *repository.Repository, queue chan ActionItem) *Operator {
	return &Operator{
		repo:  repo,
		queue: queue,
	}
}

// Run processes items until idle reports that the lane has nothing left.
func (o *Operator) Run(idle func() bool) {
	for item := range o.queue {
		o.processItem(item)
		if idle() {
			return
		}
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller gave up before its turn came.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err := item.action.Perform(item.ctx, o.repo)
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
