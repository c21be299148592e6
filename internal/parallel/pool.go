// Package parallel runs row bands of a noise render on a work-stealing
// goroutine pool.
//
// A render is split into horizontal bands with SplitRows. Each band is an
// independent task that writes a disjoint range of rows, so tasks share
// no mutable state and need no locking.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines for band rendering.
//
// Each worker owns a queue and steals from the others when its own queue
// is empty, which keeps load balanced when bands cost different amounts
// (for example when the octave count varies across calls).
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()
	done       chan struct{}
	wg         sync.WaitGroup
	running    atomic.Bool
}

// NewWorkerPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)
	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	mine := p.workQueues[id]
	for {
		select {
		case <-p.done:
			p.drain(mine)
			return
		case work := <-mine:
			work()
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drain(mine)
				return
			case work := <-mine:
				work()
			}
		}
	}
}

func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// Run distributes tasks across workers and waits for all of them.
//
// A task that has not started when ctx is done is skipped, and Run returns
// ctx.Err(). Tasks already running are not interrupted. If the pool is
// closed, Run returns ErrClosed without running anything.
func (p *WorkerPool) Run(ctx context.Context, tasks []func()) error {
	if !p.running.Load() {
		return ErrClosed
	}
	if len(tasks) == 0 {
		return ctx.Err()
	}

	var pending sync.WaitGroup
	pending.Add(len(tasks))

	for i, task := range tasks {
		wrapped := func() {
			defer pending.Done()
			if ctx.Err() != nil {
				return
			}
			task()
		}

		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-p.done:
			pending.Done()
		case <-ctx.Done():
			pending.Done()
		}
	}

	pending.Wait()
	return ctx.Err()
}

// Close stops the pool after queued work has drained.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
