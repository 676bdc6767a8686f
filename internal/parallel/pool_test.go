package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want %d (GOMAXPROCS)", n, got, want)
		}
		pool.Close()
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}
	work[7] = nil

	pool.ExecuteAll(work)

	if counter.Load() != 99 {
		t.Errorf("counter = %d, want 99", counter.Load())
	}
}

func TestWorkerPool_ExecuteAllEmpty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()
	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){})
}

func TestWorkerPool_ExecuteAllWritesByIndex(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	results := make([]int, 50)
	work := make([]func(), len(results))
	for i := range work {
		work[i] = func() { results[i] = i * i }
	}
	pool.ExecuteAll(work)

	for i, v := range results {
		if v != i*i {
			t.Fatalf("results[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestWorkerPool_Close(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close() // idempotent

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}

	ran := false
	pool.ExecuteAll([]func(){func() { ran = true }})
	if ran {
		t.Error("ExecuteAll after Close ran work")
	}
}

func TestWorkerPool_Concurrent(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			work := make([]func(), 25)
			for i := range work {
				work[i] = func() { counter.Add(1) }
			}
			pool.ExecuteAll(work)
		}()
	}
	wg.Wait()

	if counter.Load() != 200 {
		t.Errorf("counter = %d, want 200", counter.Load())
	}
}
