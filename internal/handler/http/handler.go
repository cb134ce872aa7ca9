package http

import (
	"time"

	"github.com/MKhiriev/go-provenance-keeper/internal/artifact"
	"github.com/MKhiriev/go-provenance-keeper/internal/config"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/service"
	"github.com/MKhiriev/go-provenance-keeper/internal/utils"
)

// Handler serves the REST API on top of the service layer.
type Handler struct {
	services *service.Services

	// encoder locates QR artifacts on disk; nil disables the qr route.
	encoder artifact.Encoder

	hashKey        string
	corsOrigins    []string
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. When cfg.App.HashKey is set every
// response carries the HashSHA256 header.
func NewHandler(services *service.Services, encoder artifact.Encoder, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		encoder:        encoder,
		hashKey:        cfg.App.HashKey,
		corsOrigins:    cfg.Server.CORSOrigins,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
