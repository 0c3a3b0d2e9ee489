// Package workers provides abstractions for managing and running
// background workers in the notes client.
// It defines the Worker interface, a ticker-driven implementation and a
// Workers aggregate that starts and stops several workers together.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block. Stop blocks until the job has fully exited and is a
// no-op when the job is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
