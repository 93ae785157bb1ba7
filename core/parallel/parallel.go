// Package parallel provides a chunked parallel-for used by the ensemble
// trainers. Work is split into contiguous index ranges so callers can keep
// per-item determinism by deriving randomness from the index, not the worker.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize runs fn over [0, items) split into contiguous chunks, one
// goroutine per chunk, at most NumCPU chunks. It returns after every chunk
// has finished.
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > items {
		workers = items
	}
	chunk := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunk {
		end := start + chunk
		if end > items {
			end = items
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially when items is at or below
// threshold, avoiding goroutine overhead for small workloads.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= 0 {
		return
	}
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
