package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForCoversRangeExactlyOnce(t *testing.T) {
	const n = 1000
	seen := make([]int32, n)

	For(4, n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})

	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d visited %d times", i, c)
		}
	}
}

func TestForSingleWorkerRunsInline(t *testing.T) {
	var calls int
	For(1, 10, func(start, end int) {
		calls++
		if start != 0 || end != 10 {
			t.Errorf("chunk = [%d, %d), want [0, 10)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestForEmptyRange(t *testing.T) {
	For(4, 0, func(start, end int) {
		t.Error("fn called for empty range")
	})
}

func TestForMoreWorkersThanItems(t *testing.T) {
	var total atomic.Int64
	For(16, 3, func(start, end int) {
		total.Add(int64(end - start))
	})
	if total.Load() != 3 {
		t.Errorf("covered %d indices, want 3", total.Load())
	}
}

func TestWorkersNormalization(t *testing.T) {
	if Workers(0) < 1 {
		t.Error("Workers(0) must be at least 1")
	}
	if got := Workers(7); got != 7 {
		t.Errorf("Workers(7) = %d", got)
	}
}
