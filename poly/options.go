// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package poly

import "runtime"

// Option configures an entrywise operation on Evaluations.
type Option func(*config)

type config struct {
	nbTasks int
}

// WithNbTasks sets the number of goroutines an entrywise operation may use,
// clamped to [1, 512]. It defaults to runtime.NumCPU(). Results do not depend
// on the task count; one task keeps the whole operation on the calling
// goroutine.
func WithNbTasks(nbTasks int) Option {
	return func(c *config) {
		if nbTasks < 1 {
			nbTasks = 1
		} else if nbTasks > 512 {
			nbTasks = 512
		}
		c.nbTasks = nbTasks
	}
}

func options(opts ...Option) config {
	c := config{nbTasks: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
