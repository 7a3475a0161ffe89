// Package parallel distributes embarrassingly parallel index ranges across
// goroutines. Filter sweeps write disjoint output slots, so splitting the
// output range into contiguous chunks needs no synchronization beyond the
// final join.
package parallel

import (
	"runtime"
	"sync"
)

// Workers normalizes a requested worker count: values below 1 mean
// GOMAXPROCS.
func Workers(n int) int {
	if n < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// For splits the index range [0, n) into at most workers contiguous chunks
// and runs fn(start, end) for each chunk, blocking until all complete.
// With one worker (or a range too small to split), fn runs inline on the
// calling goroutine.
func For(workers, n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers = Workers(workers)
	if workers > n {
		workers = n
	}
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
