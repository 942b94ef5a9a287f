package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/gm3197/CSE437s-group-4/internal/operator/actions"
	"github.com/gm3197/CSE437s-group-4/internal/repository"
)

var ErrStopped = errors.New("operator: stopped")

// OperatorDelegator runs actions through single-flight lanes keyed by
// receipt id. Actions for one key run one at a time in submission order;
// different keys run in parallel. A lane's worker exits when its queue
// drains and is started again on demand.
type OperatorDelegator struct {
	repo      *repository.Repository
	queueSize int

	mutex   sync.Mutex
	lanes   map[int]*lane
	stopped bool
	wg      sync.WaitGroup
}

type lane struct {
	queue   chan ActionItem
	pending int
}

func NewOperatorDelegator(repo *repository.Repository, queueSize int) *OperatorDelegator {
	if queueSize < 1 {
		queueSize = 1
	}
	return &OperatorDelegator{
		repo:      repo,
		queueSize: queueSize,
		lanes:     make(map[int]*lane),
	}
}

// Stop refuses new actions and waits for queued ones to finish.
func (d *OperatorDelegator) Stop() {
	d.mutex.Lock()
	d.stopped = true
	d.mutex.Unlock()
	d.wg.Wait()
}

// Pending returns how many actions are queued or running for key.
func (d *OperatorDelegator) Pending(key int) int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if l, ok := d.lanes[key]; ok {
		return l.pending
	}
	return 0
}

// Process queues action on key's lane and waits for it. Once started, an
// action runs to completion even if ctx is cancelled.
func (d *OperatorDelegator) Process(ctx context.Context, key int, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	l, err := d.acquire(key)
	if err != nil {
		return err
	}
	l.queue <- item

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) acquire(key int) (*lane, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.stopped {
		return nil, ErrStopped
	}

	l, ok := d.lanes[key]
	if !ok {
		l = &lane{queue: make(chan ActionItem, d.queueSize)}
		d.lanes[key] = l

		op := NewOperator(d.repo, l.queue)
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			op.Run(func() bool { return d.release(key, l) })
		}()
	}
	l.pending++
	return l, nil
}

// release marks one item of l done and retires the lane once it is empty.
func (d *OperatorDelegator) release(key int, l *lane) bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	l.pending--
	if l.pending > 0 {
		return false
	}
	delete(d.lanes, key)
	return true
}
