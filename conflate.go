package busan

import (
	"context"
	"sync"
)

// ValueFunc is a cancellable unit of work over one submitted value.
type ValueFunc[T any] func(ctx context.Context, v T) error

// Conflator delivers the most recently submitted value to an
// asynchronous callback while never running two invocations at once.
// Values submitted while the callback is busy overwrite each other;
// only the newest survives, and that one is always eventually
// delivered. There is no per-value accept/drop signal.
type Conflator[T any] struct {
	exec Executor
	fn   ValueFunc[T]

	mu      sync.Mutex
	current Handle

	// Single-element overwrite mailbox: the pending value, if any,
	// is the only submission the next callback invocation will see.
	pending    T
	hasPending bool
}

// NewConflator creates a retain-newest guard around fn.
// It panics if exec or fn is nil.
func NewConflator[T any](exec Executor, fn ValueFunc[T]) *Conflator[T] {
	if exec == nil {
		panic("busan: nil executor")
	}
	if fn == nil {
		panic("busan: nil task")
	}

	return &Conflator[T]{exec: exec, fn: fn}
}

// Trigger submits v. If no task is running, a drain task starts and
// processes v; otherwise v is parked in the mailbox, replacing any
// value parked before it, and the running drain picks it up before
// exiting.
func (g *Conflator[T]) Trigger(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.pending, g.hasPending = v, true

	if g.current != nil && g.current.Active() {
		return
	}
	g.current = g.exec.Spawn(g.drain)
}

// drain runs callback invocations until the mailbox stays empty.
// Looping here, rather than respawning a task per pending value, keeps
// the relaunch chain flat. The slot is released under the mutex before
// the final return, so a Trigger racing with task exit either hands its
// value to this drain or starts a fresh one; the value is never lost.
func (g *Conflator[T]) drain(ctx context.Context) error {
	for {
		g.mu.Lock()
		if !g.hasPending {
			g.current = nil
			g.mu.Unlock()
			return nil
		}
		v := g.pending
		var zero T
		g.pending, g.hasPending = zero, false
		g.mu.Unlock()

		if err := g.fn(ctx, v); err != nil {
			// A failed invocation does not relaunch: a value parked
			// during it waits for the next Trigger.
			g.mu.Lock()
			g.current = nil
			g.mu.Unlock()
			return err
		}
	}
}
