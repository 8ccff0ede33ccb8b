package scraper

import (
	"context"
	"sync"
	"time"
)

// Task is one unit of scrape work, usually a single detail-page fetch.
type Task func(ctx context.Context) error

// Pool fans scrape tasks out over a fixed number of workers with an
// optional shared requests-per-second cap, so detail fetches never hit
// the vendor harder than one polite client would.
type Pool struct {
	workers int
	tasks   chan Task
	rate    *time.Ticker
	wg      sync.WaitGroup
}

// NewPool sizes the pool. rps caps the combined request rate across all
// workers; zero or negative disables the cap.
func NewPool(workers, rps int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	p := &Pool{
		workers: workers,
		tasks:   make(chan Task, workers*2),
	}
	if rps > 0 {
		p.rate = time.NewTicker(time.Second / time.Duration(rps))
	}
	return p
}

// Submit queues a task. It blocks when the queue is full, which keeps
// the listing walk from racing far ahead of the detail fetches.
func (p *Pool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

// Close stops intake. Run's error channel closes once queued tasks drain.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

// Run starts the workers and returns the channel their task errors are
// reported on. Successful tasks report a nil error so callers can count
// completions. The channel is buffered for a full catalog's worth of
// results, so callers may submit everything before draining.
func (p *Pool) Run(ctx context.Context) <-chan error {
	out := make(chan error, p.workers*1024)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					if p.rate != nil {
						select {
						case <-ctx.Done():
							return
						case <-p.rate.C:
						}
					}
					select {
					case <-ctx.Done():
						return
					case out <- t(ctx):
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		if p.rate != nil {
			p.rate.Stop()
		}
		close(out)
	}()

	return out
}
