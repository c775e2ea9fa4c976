// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}

// Stopper is implemented by workers that own goroutines. Stop blocks until
// they have exited.
type Stopper interface {
	Stop()
}

// Job is a ticker-driven background job, such as the client preferences
// refresh.
type Job interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
