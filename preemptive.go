package busan

import "sync"

// Preemptive restarts on every submission: the task from the previous
// trigger, if still in flight, has its cancellation requested before
// the new task starts.
type Preemptive struct {
	exec Executor
	fn   TaskFunc

	mu      sync.Mutex
	current Handle
}

// NewPreemptive creates a cancel-then-restart guard around fn.
// It panics if exec or fn is nil.
func NewPreemptive(exec Executor, fn TaskFunc) *Preemptive {
	if exec == nil {
		panic("busan: nil executor")
	}
	if fn == nil {
		panic("busan: nil task")
	}

	return &Preemptive{exec: exec, fn: fn}
}

// Trigger cancels the current task, if any, then unconditionally starts
// a new one. Cancellation is cooperative: the previous callback stops
// at its next context check, and its remaining effects do not run. A
// callback that never checks its context may still be winding down when
// the new task starts.
func (g *Preemptive) Trigger() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current != nil {
		g.current.Cancel()
	}
	g.current = g.exec.Spawn(g.fn)
}
