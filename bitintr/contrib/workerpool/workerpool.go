// Copyright 2025 go-bitintr Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool provides a persistent worker pool for sweeping large
// operand ranges in parallel. A Pool is created once and reused for every
// range, so a verification run over many operations and widths spawns its
// goroutines only once.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.Sweep(ctx, len(operands), 256, func(start, end int) error {
//	    return checkRange(operands[start:end])
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// sweeps. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one worker's share of a parallel call.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers persistent workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor splits [0, n) into one contiguous range per worker and calls fn
// on each. Blocks until all ranges are done. A closed pool runs fn(0, n) on
// the calling goroutine.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= n {
			wg.Done()
			continue
		}
		p.workC <- workItem{fn: func() { fn(start, end) }, barrier: &wg}
	}
	wg.Wait()
}

// ParallelForAtomicBatched hands out [0, n) in batches of batchSize through
// an atomic counter, so workers that finish early take more batches. Blocks
// until every batch is done.
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if p.closed.Load() || workers == 1 {
		fn(0, n)
		return
	}

	var nextBatch atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- workItem{
			fn: func() {
				for {
					start := int(nextBatch.Add(1)-1) * batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			barrier: &wg,
		}
	}
	wg.Wait()
}

// Sweep is ParallelForAtomicBatched for fallible work. Batches stop being
// handed out once fn returns an error or ctx is done; batches already
// running finish. It returns the first error from fn, or ctx.Err() if the
// context ended before every batch ran.
func (p *Pool) Sweep(ctx context.Context, n, batchSize int, fn func(start, end int) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	var (
		stop     atomic.Bool
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
		stop.Store(true)
	}

	numBatches := (n + batchSize - 1) / batchSize
	body := func(first, last int) {
		for b := first; b < last; b++ {
			if stop.Load() {
				return
			}
			if err := ctx.Err(); err != nil {
				fail(err)
				return
			}
			start := b * batchSize
			if err := fn(start, min(start+batchSize, n)); err != nil {
				fail(err)
				return
			}
		}
	}
	// With no more batches than workers each worker takes one batch.
	if numBatches <= p.numWorkers {
		p.ParallelFor(numBatches, body)
	} else {
		p.ParallelForAtomicBatched(numBatches, 1, body)
	}
	return firstErr
}
