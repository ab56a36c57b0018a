package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/sterling-client/internal/logger"
)

// DefaultReconcileInterval matches the snapshot cache TTL.
const DefaultReconcileInterval = 5 * time.Minute

// refresher is the part of DataSynchronizer the job needs.
type refresher interface {
	Refresh(ctx context.Context) error
}

type reconcileJob struct {
	data   refresher
	logger *logger.Logger

	// mu serialises Start and Stop; the goroutine never takes it.
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReconcileJob creates a job that calls data.Refresh on a ticker. The job
// is idle until Start is called.
func NewReconcileJob(data DataSynchronizer, log *logger.Logger) ReconcileJob {
	return &reconcileJob{data: data, logger: log}
}

// Start implements ReconcileJob. It stops any previously running job, then
// launches a goroutine that refreshes every interval. The goroutine exits when
// ctx is cancelled or Stop is called.
func (j *reconcileJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultReconcileInterval
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopLocked()

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.data.Refresh(jobCtx); err != nil {
					j.logger.Debug().Err(err).Str("func", "*reconcileJob.Start").Msg("reconcile skipped")
				}
			}
		}
	}()
}

// Stop implements ReconcileJob. It cancels the goroutine's context and blocks
// until it has exited. Safe to call when the job is not running.
func (j *reconcileJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopLocked()
}

func (j *reconcileJob) stopLocked() {
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.wg.Wait()
}
