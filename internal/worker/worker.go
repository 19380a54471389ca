package worker

import (
	"context"
	"errors"
	"sync"
)

// Task represents a unit of work executed by the pool.
type Task func(ctx context.Context) error

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task)
	// Stop waits for submitted tasks and returns their joined errors.
	Stop() error
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
// Tasks receive ctx; once it is done, queued tasks are skipped with ctx.Err().
func NewPool(ctx context.Context, n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job == nil {
					continue
				}
				err := ctx.Err()
				if err == nil {
					err = job(ctx)
				}
				if err != nil {
					p.record(err)
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

func (p *pool) record(err error) {
	p.mu.Lock()
	p.errs = append(p.errs, err)
	p.mu.Unlock()
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

func (p *pool) Stop() error {
	close(p.jobs)
	p.wg.Wait()
	return errors.Join(p.errs...)
}
