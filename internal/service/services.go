package service

import (
	"fmt"

	"github.com/MKhiriev/go-provenance-keeper/internal/adapter"
	"github.com/MKhiriev/go-provenance-keeper/internal/artifact"
	"github.com/MKhiriev/go-provenance-keeper/internal/config"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/store"
)

type Services struct {
	AuthService           AuthService
	Guard                 Guard
	RegistrationService   RegistrationService
	VerificationService   VerificationService
	AdminService          AdminService
	ReconciliationService ReconciliationService
	AppInfoService        AppInfoService
}

func NewServices(storages *store.Storages, ledger adapter.LedgerAdapter, encoder artifact.Encoder, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, cfg.Ledger.Driver, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	guard := NewGuard(storages.PrincipalRepository, logger)
	reconciliation := NewReconciliationService(ledger, storages.ProductRepository, storages.InconsistencyRepository, logger)

	return &Services{
		AuthService:           NewAuthService(storages.PrincipalRepository, storages.SessionRepository, cfg.App, logger),
		Guard:                 guard,
		RegistrationService:   NewRegistrationService(guard, ledger, storages.ProductRepository, storages.InconsistencyRepository, encoder, logger),
		VerificationService:   NewVerificationService(ledger, logger),
		AdminService:          NewAdminService(guard, storages, reconciliation, logger),
		ReconciliationService: reconciliation,
		AppInfoService:        appInfo,
	}, nil
}
