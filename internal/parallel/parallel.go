// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package parallel splits index ranges into contiguous chunks processed by a
// bounded number of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Execute processes nbIterations indices with the work function and waits for
// completion. work is called with disjoint half-open ranges [start, end)
// covering [0, nbIterations); each index is handed to exactly one call, so
// the result of entrywise work never depends on the number of workers.
//
// maxCpus caps the number of goroutines; it defaults to runtime.NumCPU().
// With a cap of 1 the whole range runs inline on the calling goroutine.
func Execute(nbIterations int, work func(int, int), maxCpus ...int) {
	nbTasks := runtime.NumCPU()
	if len(maxCpus) == 1 {
		nbTasks = maxCpus[0]
		if nbTasks < 1 {
			nbTasks = 1
		} else if nbTasks > 512 {
			nbTasks = 512
		}
	}

	if nbTasks == 1 {
		work(0, nbIterations)
		return
	}

	nbIterationsPerCpus := nbIterations / nbTasks

	// more CPUs than iterations: a goroutine handles exactly one index
	if nbIterationsPerCpus < 1 {
		nbIterationsPerCpus = 1
		nbTasks = nbIterations
	}

	var wg sync.WaitGroup

	extraTasks := nbIterations - (nbTasks * nbIterationsPerCpus)
	extraTasksOffset := 0

	for i := 0; i < nbTasks; i++ {
		wg.Add(1)
		_start := i*nbIterationsPerCpus + extraTasksOffset
		_end := _start + nbIterationsPerCpus
		if extraTasks > 0 {
			_end++
			extraTasks--
			extraTasksOffset++
		}
		go func() {
			work(_start, _end)
			wg.Done()
		}()
	}

	wg.Wait()
}
