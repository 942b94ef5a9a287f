package dispatch

import (
	"context"
	"sync"
)

// Future is the result of an asynchronous operation. It resolves exactly
// once.
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) resolve(value T, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// Done is closed once the future has resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future resolves or ctx is done. Awaiting on the
// loop a future that needs the loop to resolve deadlocks.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result returns the resolved value. ok is false while still pending.
func (f *Future[T]) Result() (value T, err error, ok bool) {
	select {
	case <-f.done:
		return f.value, f.err, true
	default:
		var zero T
		return zero, nil, false
	}
}

// Resolved returns a future that has already completed.
func Resolved[T any](value T, err error) *Future[T] {
	f := newFuture[T]()
	f.resolve(value, err)
	return f
}

// Submit runs work on its own goroutine, then apply on the dispatcher. The
// future resolves with apply's result after apply returns, so observers see
// UI state already updated. A nil apply passes the work result through.
func Submit[T any](d Dispatcher, work func() (T, error), apply func(T, error) (T, error)) *Future[T] {
	f := newFuture[T]()

	go func() {
		value, err := work()
		posted := d.Post(func() {
			if apply != nil {
				value, err = apply(value, err)
			}
			f.resolve(value, err)
		})
		if !posted {
			var zero T
			f.resolve(zero, ErrStopped)
		}
	}()

	return f
}
