// Package workers runs background jobs that live as long as the server.
// Every job receives the server's context and must return once it is done.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the
// job has nothing left to do.
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts an ordinary function to [Worker].
type WorkerFunc func(ctx context.Context)

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) {
	f(ctx)
}
