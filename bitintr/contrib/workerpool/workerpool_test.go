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

package workerpool

import (
	"context"
	"errors"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	tests := []struct {
		name string
		n    int
	}{
		{"zero", 0},
		{"smaller_than_workers", 3},
		{"uneven", 101},
		{"large", 1 << 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make([]int32, tt.n)
			pool.ParallelFor(tt.n, func(start, end int) {
				for i := start; i < end; i++ {
					seen[i]++
				}
			})
			for i, c := range seen {
				if c != 1 {
					t.Fatalf("index %d visited %d times, want 1", i, c)
				}
			}
		})
	}
}

func TestParallelForAtomicBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, batch := range []int{0, 1, 7, 64, 1000} {
		n := 513
		seen := make([]atomic.Int32, n)
		pool.ParallelForAtomicBatched(n, batch, func(start, end int) {
			for i := start; i < end; i++ {
				seen[i].Add(1)
			}
		})
		for i := range seen {
			if c := seen[i].Load(); c != 1 {
				t.Fatalf("batch %d: index %d visited %d times, want 1", batch, i, c)
			}
		}
	}
}

func TestSweep(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var total atomic.Int64
	err := pool.Sweep(context.Background(), 10000, 64, func(start, end int) error {
		total.Add(int64(end - start))
		return nil
	})
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if total.Load() != 10000 {
		t.Errorf("visited %d items, want 10000", total.Load())
	}
}

func TestSweepFewBatches(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var mu sync.Mutex
	var got [][2]int
	err := pool.Sweep(context.Background(), 10, 4, func(start, end int) error {
		mu.Lock()
		got = append(got, [2]int{start, end})
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	slices.SortFunc(got, func(a, b [2]int) int { return a[0] - b[0] })
	want := [][2]int{{0, 4}, {4, 8}, {8, 10}}
	if !slices.Equal(got, want) {
		t.Errorf("Sweep() ranges = %v, want %v", got, want)
	}
}

func TestSweepStopsOnError(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	errBoom := errors.New("boom")
	var batches atomic.Int32
	err := pool.Sweep(context.Background(), 1<<20, 1, func(start, end int) error {
		batches.Add(1)
		if start == 10 {
			return errBoom
		}
		return nil
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("Sweep() error = %v, want %v", err, errBoom)
	}
	if batches.Load() == 1<<20 {
		t.Error("Sweep() kept handing out batches after an error")
	}
}

func TestSweepCanceled(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := pool.Sweep(ctx, 100, 10, func(start, end int) error {
		called = true
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Sweep() error = %v, want context.Canceled", err)
	}
	if called {
		t.Error("Sweep() ran work on a canceled context")
	}

	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()
	err = pool.Sweep(ctx, 1<<20, 1, func(start, end int) error {
		if start == 100 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Sweep() after cancel error = %v, want context.Canceled", err)
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	for i := range n {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}

	var total int
	err := pool.Sweep(context.Background(), 50, 8, func(start, end int) error {
		total += end - start
		return nil
	})
	if err != nil || total != 50 {
		t.Errorf("Sweep() on closed pool = (%d items, %v), want (50, nil)", total, err)
	}
}

func BenchmarkSweep(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	ctx := context.Background()
	for b.Loop() {
		_ = pool.Sweep(ctx, 1000, 10, func(start, end int) error {
			for j := start; j < end; j++ {
				_ = j * j
			}
			return nil
		})
	}
}
