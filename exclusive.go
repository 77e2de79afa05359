package busan

import "sync"

// Exclusive starts submitted work only while no previous submission
// from the same guard is still running; triggers while busy are
// dropped, not queued.
type Exclusive struct {
	exec Executor
	fn   TaskFunc

	mu      sync.Mutex
	current Handle
}

// NewExclusive creates a drop-while-busy guard around fn.
// It panics if exec or fn is nil.
func NewExclusive(exec Executor, fn TaskFunc) *Exclusive {
	if exec == nil {
		panic("busan: nil executor")
	}
	if fn == nil {
		panic("busan: nil task")
	}

	return &Exclusive{exec: exec, fn: fn}
}

// Trigger starts fn unless a task from a previous trigger is still
// active; a finished or failed task frees the slot. There is no
// accept/drop signal: callers that need one instrument fn itself.
func (g *Exclusive) Trigger() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current != nil && g.current.Active() {
		return
	}
	g.current = g.exec.Spawn(g.fn)
}
