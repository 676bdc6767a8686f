// Package parallel runs independent jobs on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines pulling work from a shared queue.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queue   chan func()

	// mu guards queue against being closed while ExecuteAll sends.
	mu sync.RWMutex
	wg sync.WaitGroup

	running atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), workers*2),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for work := range p.queue {
		work()
	}
}

// ExecuteAll runs every function on the pool and waits for all of them to
// return. Nil entries are skipped. If the pool is closed, this is a no-op.
func (p *WorkerPool) ExecuteAll(work []func()) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(work) == 0 || !p.running.Load() {
		return
	}

	var done sync.WaitGroup
	for _, fn := range work {
		if fn == nil {
			continue
		}
		done.Add(1)
		p.queue <- func() {
			defer done.Done()
			fn()
		}
	}
	done.Wait()
}

// Close stops the workers after the queued work has finished.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	p.mu.Lock()
	close(p.queue)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
