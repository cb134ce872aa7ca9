// Package grpc exposes the standard gRPC health service of the server.
//
// Serving statuses are not computed here: the health worker checks the
// ledger and the catalog and publishes the result through [Handler.Health].
package grpc

import (
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Handler is the root gRPC transport handler.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts NOT_SERVING until
// the first check reports otherwise.
func NewHandler(logger *logger.Logger) *Handler {
	h := health.NewServer()
	h.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: h,
		logger: logger,
	}
}

// Health returns the status sink fed by the health worker.
func (h *Handler) Health() *health.Server {
	return h.health
}

// Register attaches the health and reflection services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
}

// Shutdown flips every status to NOT_SERVING so clients drain before the
// listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
