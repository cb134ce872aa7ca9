// Package workers runs the periodic background jobs of the server: ledger
// to catalog reconciliation, the health check behind the gRPC health service
// and the purge of expired session revocations.
//
// Every worker ticks on its own goroutine and stops when its context is
// cancelled or Stop is called.
package workers

import (
	"context"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Worker is a background job.
type Worker interface {
	// Start launches the job and returns immediately.
	Start(ctx context.Context)

	// Stop cancels the job and waits for its goroutine to exit. Safe to call
	// on a worker that was never started.
	Stop()
}

// Pinger is anything the health worker can check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthSetter receives the check results. *health.Server from
// google.golang.org/grpc/health satisfies it.
type HealthSetter interface {
	SetServingStatus(service string, servingStatus healthpb.HealthCheckResponse_ServingStatus)
}

// PingFunc adapts a function such as (*sql.DB).PingContext to [Pinger].
type PingFunc func(ctx context.Context) error

// Ping calls f.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }
