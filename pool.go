package busan

import "golang.org/x/sync/errgroup"

// Pool is an Executor that bounds how many tasks run at the same time.
// Spawn blocks while the limit is saturated (errgroup semantics), so a
// guard sharing a saturated Pool blocks in Trigger; guards pair most
// naturally with Spawner, Pool suits direct submission.
//
// Per-task cancellation and failure reporting are identical to Spawner.
type Pool struct {
	cfg config
	eg  *errgroup.Group
}

// NewPool creates a bounded Executor. limit is the maximum number of
// concurrently running tasks; 0 means unlimited. NewPool panics if
// limit is negative.
func NewPool(limit int, opts ...Option) *Pool {
	if limit < 0 {
		panic("busan: pool limit cannot be negative")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	eg := new(errgroup.Group)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	return &Pool{cfg: cfg, eg: eg}
}

// Spawn starts fn once a slot is free, blocking while the pool is full.
// Spawn panics if fn is nil.
func (p *Pool) Spawn(fn TaskFunc) Handle {
	if fn == nil {
		panic("busan: nil task")
	}

	h := newHandle(p.cfg.baseCtx)
	p.eg.Go(func() error {
		err := p.cfg.runTask(h.ctx, fn)
		h.finish(err)
		return err
	})

	return h
}

// Wait blocks until all spawned tasks finish and returns the first
// non-nil task error, if any.
func (p *Pool) Wait() error {
	return p.eg.Wait()
}
