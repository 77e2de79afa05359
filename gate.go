package busan

import (
	"context"
	"sync"
)

// Gate is a reusable single-waiter rendezvous: one flow parks in Wait
// until another releases it with Resume. The gate holds at most one
// waiter and is reusable across many wait/resume cycles.
//
// Gate carries no value and no memory: a Resume with nobody parked is
// a no-op, it does not latch a release for a later Wait.
type Gate struct {
	mu     sync.Mutex
	waiter chan struct{}
}

// NewGate creates an empty gate.
func NewGate() *Gate {
	return &Gate{}
}

// Wait parks the calling flow until Resume releases it, returning nil.
// If the gate already reports paused, Wait returns nil immediately
// without creating a second waiter.
//
// If ctx ends first, the waiter slot is cleared and ctx's error is
// returned; a later Resume will not operate on the dead waiter.
//
// Concurrent Wait calls from independent flows before a Resume are
// outside the contract: the second caller observes the gate paused and
// returns without parking.
func (g *Gate) Wait(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	g.mu.Lock()
	if g.waiter != nil {
		g.mu.Unlock()
		return nil
	}
	release := make(chan struct{})
	g.waiter = release
	g.mu.Unlock()

	select {
	case <-release:
		return nil
	case <-ctx.Done():
		g.mu.Lock()
		if g.waiter == release {
			g.waiter = nil
		}
		g.mu.Unlock()
		return ctx.Err()
	}
}

// Resume releases the parked flow, if any, and clears the slot.
// Calling Resume with no waiter is a no-op.
func (g *Gate) Resume() {
	g.mu.Lock()
	release := g.waiter
	g.waiter = nil
	g.mu.Unlock()

	if release != nil {
		close(release)
	}
}

// Paused reports whether a flow is currently parked in Wait.
func (g *Gate) Paused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.waiter != nil
}
