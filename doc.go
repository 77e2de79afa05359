// Package busan provides latest-wins task coordination primitives.
//
// Four independent components, each owning a single "current task" slot:
//   - Gate: a reusable suspend/resume rendezvous with at most one waiter
//   - Exclusive: starts work only while none is running (drop-while-busy)
//   - Preemptive: cancels in-flight work, then starts the new submission
//   - Conflator: processes the newest submitted value, never two at once
//
// Work is started through an Executor, a caller-supplied capability that
// spawns cancellable tasks and reports their activity. The package ships
// two: Spawner (one goroutine per task) and Pool (bounded, errgroup-backed).
//
// Semantics:
//   - per guard, at most one callback invocation runs at any time
//   - Exclusive drops triggers while busy; Conflator keeps only the
//     newest value and guarantees it is eventually processed
//   - Preemptive requests cooperative cancellation: callbacks must check
//     their context at suspension points for the cancel to take effect
//   - task failures propagate through Handle.Err; guards never retry,
//     swallow, or log them
//   - triggers are expected from a single submission flow; guard state is
//     internally synchronized, but submission ordering across independent
//     flows is the caller's responsibility
package busan
