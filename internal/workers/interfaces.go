// Package workers runs the background jobs of the API server.
// It defines the Worker interface and a Workers aggregate that starts and
// stops a set of workers in a unified way.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must return promptly; the work itself runs in goroutines owned by the
// worker until ctx is cancelled or Stop is called. Stop blocks until those
// goroutines have exited and is safe to call on a worker that never started.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc; wg sync.WaitGroup }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    w.wg.Add(1)
//	    go func() { defer w.wg.Done(); <-ctx.Done() }()
//	}
//
//	func (w *MyWorker) Stop() { w.cancel(); w.wg.Wait() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
