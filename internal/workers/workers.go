// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and blocks until all of them
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}
