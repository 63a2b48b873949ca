// Package utils holds helpers shared by the packages of microbp.
package utils

import (
	"runtime"
	"sync"

	"go.uber.org/atomic"
)

// MultiThread runs f on every integer in the range [start, end), spreading the work across
// goroutines. It returns once every call to f has returned.
//
// MultiThread should be run sequentially, not in a separate goroutine. Calls to f may happen in
// any order and in parallel, so f must only write to state that belongs to its own index.
//
// 'opsPerThread' is the number of indexes that each goroutine will claim at a time, and
// 'threadsPerCPU' is the number of goroutines created for each CPU. Values below 1 are treated
// as 1.
func MultiThread(start, end int, f func(int), opsPerThread, threadsPerCPU int) {
	if end <= start {
		return
	}

	if opsPerThread < 1 {
		opsPerThread = 1
	}
	if threadsPerCPU < 1 {
		threadsPerCPU = 1
	}

	numThreads := runtime.NumCPU() * threadsPerCPU
	if chunks := (end - start + opsPerThread - 1) / opsPerThread; numThreads > chunks {
		numThreads = chunks
	}

	// small ranges aren't worth the goroutines
	if numThreads == 1 {
		for i := start; i < end; i++ {
			f(i)
		}
		return
	}

	// the next index that hasn't been claimed
	next := atomic.NewInt64(int64(start))

	var wg sync.WaitGroup
	wg.Add(numThreads)

	for thread := 0; thread < numThreads; thread++ {
		go func() {
			defer wg.Done()

			for {
				e := int(next.Add(int64(opsPerThread)))
				i := e - opsPerThread
				if i >= end {
					return
				}

				if e > end {
					e = end
				}

				for ; i < e; i++ {
					f(i)
				}
			}
		}()
	}

	wg.Wait()
}
