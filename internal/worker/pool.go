// worker/pool.go
package worker

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrPoolClosed = errors.New("worker: pool closed")
	ErrQueueFull  = errors.New("worker: queue full")
)

// Job is a unit of fire-and-forget work.
type Job func(ctx context.Context)

type jobWrapper struct {
	id string
	fn Job
}

// Pool runs submitted jobs on a fixed number of goroutines. Submit never
// blocks: when the queue is full the job is rejected.
type Pool struct {
	jobs    chan jobWrapper
	workers int
	wg      sync.WaitGroup

	mu     sync.Mutex
	closed bool
	onDone func(id string)
}

func NewPool(workerCount int, bufferSize int) *Pool {
	if workerCount <= 0 {
		workerCount = 1
	}
	if bufferSize <= 0 {
		bufferSize = workerCount * 2
	}
	return &Pool{
		jobs:    make(chan jobWrapper, bufferSize),
		workers: workerCount,
	}
}

// OnDone registers a hook called after every job. Set it before Start.
func (p *Pool) OnDone(f func(id string)) {
	p.onDone = f
}

// Start launches the workers. They exit when ctx is cancelled or the pool is
// closed and drained.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			job.fn(ctx)
			if p.onDone != nil {
				p.onDone(job.id)
			}
		}
	}
}

// Submit enqueues fn under id.
func (p *Pool) Submit(id string, fn Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}
	select {
	case p.jobs <- jobWrapper{id: id, fn: fn}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting jobs and waits for queued ones to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
