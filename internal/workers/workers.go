package workers

import (
	"context"
	"sync"
	"time"
)

// Workers starts registered workers in order and stops them in reverse.
type Workers struct {
	mu      sync.Mutex
	workers []Worker
	running bool
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start starts every worker. A second Start without Stop is a no-op.
func (w *Workers) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
	w.running = true
}

// Stop stops every worker, last started first.
func (w *Workers) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.running = false
}

type scheduled struct {
	job      IntervalJob
	interval time.Duration
}

// Scheduled adapts an IntervalJob into a Worker that runs every interval.
func Scheduled(job IntervalJob, interval time.Duration) Worker {
	return &scheduled{job: job, interval: interval}
}

func (s *scheduled) Start(ctx context.Context) { s.job.Start(ctx, s.interval) }
func (s *scheduled) Stop()                     { s.job.Stop() }
