// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines and keep
// running until ctx is cancelled or Stop is called. Stop blocks until the
// worker has exited and is safe to call on a worker that never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// IntervalJob is a job driven by a ticker, such as the reconcile job.
type IntervalJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
