package server

import "context"

// Server is the lifecycle of a transport server.
type Server interface {
	// RunServer serves until ctx is cancelled or a termination signal
	// arrives, then shuts down.
	RunServer(ctx context.Context)

	// Shutdown gracefully stops the server.
	Shutdown()
}
