package service

import (
	"context"

	"github.com/MKhiriev/go-provenance-keeper/internal/config"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/models"
)

type appInfoService struct {
	info models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService snapshots the build metadata once; the answer never
// changes while the process runs.
func NewAppInfoService(cfg config.App, ledgerDriver string, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.VersionResponse{
			Version: cfg.Version,
			Date:    cfg.BuildDate,
			Commit:  cfg.BuildCommit,
			Ledger:  ledgerDriver,
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(_ context.Context) models.VersionResponse {
	return s.info
}
