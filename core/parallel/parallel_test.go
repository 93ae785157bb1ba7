package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelizeCoversEveryIndex(t *testing.T) {
	for _, items := range []int{0, 1, 3, 7, 100, 1000} {
		seen := make([]int32, items)
		Parallelize(items, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		})
		for i, n := range seen {
			if n != 1 {
				t.Errorf("items=%d: index %d visited %d times", items, i, n)
			}
		}
	}
}

func TestParallelizeChunksAreOrdered(t *testing.T) {
	Parallelize(10, func(start, end int) {
		if start >= end {
			t.Errorf("empty chunk [%d, %d)", start, end)
		}
		if start < 0 || end > 10 {
			t.Errorf("chunk [%d, %d) out of range", start, end)
		}
	})
}

func TestParallelizeWithThreshold(t *testing.T) {
	var calls int32
	ParallelizeWithThreshold(3, 5, func(start, end int) {
		atomic.AddInt32(&calls, 1)
		if start != 0 || end != 3 {
			t.Errorf("sequential path got chunk [%d, %d), want [0, 3)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("below threshold: %d calls, want 1", calls)
	}

	var total int32
	ParallelizeWithThreshold(100, 5, func(start, end int) {
		atomic.AddInt32(&total, int32(end-start))
	})
	if total != 100 {
		t.Errorf("above threshold covered %d items, want 100", total)
	}
}
