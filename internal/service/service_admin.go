package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/store"
	"github.com/MKhiriev/go-provenance-keeper/models"
)

type adminService struct {
	guard           Guard
	principals      store.PrincipalRepository
	products        store.ProductRepository
	inconsistencies store.InconsistencyRepository
	reconciliation  ReconciliationService

	logger *logger.Logger
}

func NewAdminService(
	guard Guard,
	storages *store.Storages,
	reconciliation ReconciliationService,
	logger *logger.Logger,
) AdminService {
	return &adminService{
		guard:           guard,
		principals:      storages.PrincipalRepository,
		products:        storages.ProductRepository,
		inconsistencies: storages.InconsistencyRepository,
		reconciliation:  reconciliation,
		logger:          logger,
	}
}

func (s *adminService) ListPrincipals(ctx context.Context, session models.Session) ([]models.Principal, error) {
	if err := s.guard.Require(ctx, session, CapAdminister); err != nil {
		return nil, err
	}

	principals, err := s.principals.ListPrincipals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list principals: %w", err)
	}

	return principals, nil
}

func (s *adminService) ListCatalog(ctx context.Context, session models.Session) ([]models.Product, error) {
	if err := s.guard.Require(ctx, session, CapAdminister); err != nil {
		return nil, err
	}

	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	return products, nil
}

// ToggleActive flips the active flag of principalID in one storage
// statement. An admin may suspend itself; it then loses access on its next
// request like anyone else.
func (s *adminService) ToggleActive(ctx context.Context, session models.Session, principalID int64) (models.Principal, error) {
	if err := s.guard.Require(ctx, session, CapAdminister); err != nil {
		return models.Principal{}, err
	}
	if principalID <= 0 {
		return models.Principal{}, ErrInvalidDataProvided
	}

	principal, err := s.principals.ToggleActive(ctx, principalID)
	if err != nil {
		return models.Principal{}, fmt.Errorf("toggle principal %d: %w", principalID, err)
	}

	logger.FromContext(ctx).Info().
		Int64("admin_id", session.PrincipalID).
		Int64("principal_id", principal.ID).
		Bool("active", principal.Active).
		Msg("principal active flag changed")

	return principal, nil
}

func (s *adminService) ListInconsistencies(ctx context.Context, session models.Session, onlyOpen bool) ([]models.Inconsistency, error) {
	if err := s.guard.Require(ctx, session, CapAdminister); err != nil {
		return nil, err
	}

	list, err := s.inconsistencies.ListInconsistencies(ctx, onlyOpen)
	if err != nil {
		return nil, fmt.Errorf("list inconsistencies: %w", err)
	}

	return list, nil
}

func (s *adminService) Reconcile(ctx context.Context, session models.Session) (models.ReconcileReport, error) {
	if err := s.guard.Require(ctx, session, CapAdminister); err != nil {
		return models.ReconcileReport{}, err
	}

	return s.reconciliation.Reconcile(ctx)
}
