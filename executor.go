package busan

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// TaskFunc is a cancellable unit of work started through an Executor.
// The context carries the cooperative cancellation signal: the function
// must check it at its own suspension points for Cancel to take effect.
type TaskFunc func(ctx context.Context) error

// ErrTaskCanceled is the cancellation cause installed by Handle.Cancel.
// A canceled task that returns its context error reports a failure
// satisfying errors.Is(err, context.Canceled); the cause is available
// through context.Cause inside the task.
var ErrTaskCanceled = errors.New("busan: task canceled")

// A Handle identifies one in-flight task started by an Executor.
type Handle interface {
	// Active reports whether the task is still running. It becomes
	// false once the task finishes, fails, or observes its cancellation.
	Active() bool

	// Cancel requests cooperative termination. It is idempotent and
	// a no-op once the task has finished.
	Cancel()

	// Done returns a channel that closes when the task finishes.
	Done() <-chan struct{}

	// Err returns the task error once Done is closed, nil before that
	// and nil for a task that completed normally.
	Err() error
}

// An Executor starts cancellable asynchronous tasks.
//
// Guards receive an Executor by reference and never own it: one
// executor typically outlives many guards.
type Executor interface {
	Spawn(fn TaskFunc) Handle
}

// Spawner is the default Executor. Each task runs on its own goroutine
// under a context derived with context.WithCancelCause, so Cancel on
// the returned handle is visible to the task as context cancellation.
//
// The zero value is not usable; construct with NewSpawner.
type Spawner struct {
	cfg config
	wg  sync.WaitGroup
}

// NewSpawner creates a goroutine-backed Executor.
func NewSpawner(opts ...Option) *Spawner {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Spawner{cfg: cfg}
}

// Spawn starts fn on a new goroutine and returns its handle.
// Spawn panics if fn is nil.
func (s *Spawner) Spawn(fn TaskFunc) Handle {
	if fn == nil {
		panic("busan: nil task")
	}

	h := newHandle(s.cfg.baseCtx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		h.finish(s.cfg.runTask(h.ctx, fn))
	}()

	return h
}

// Wait blocks until every task spawned so far has finished.
// It does not cancel anything; pair it with WithContext for teardown.
func (s *Spawner) Wait() {
	s.wg.Wait()
}

// runTask executes fn, converting panics to errors when configured.
func (c config) runTask(ctx context.Context, fn TaskFunc) (err error) {
	if c.panicToError {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("busan: panic recovered: %v", r)
			}
		}()
	}

	return fn(ctx)
}

type handle struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
	done   chan struct{}
	err    error
}

func newHandle(base context.Context) *handle {
	ctx, cancel := context.WithCancelCause(base)
	return &handle{ctx: ctx, cancel: cancel, done: make(chan struct{})}
}

// finish records err and releases the handle. The err store happens
// before the close, so Err reads gated on Done are race-free.
func (h *handle) finish(err error) {
	h.err = err
	h.cancel(nil)
	close(h.done)
}

func (h *handle) Active() bool {
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}

func (h *handle) Cancel() {
	h.cancel(ErrTaskCanceled)
}

func (h *handle) Done() <-chan struct{} {
	return h.done
}

func (h *handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}
