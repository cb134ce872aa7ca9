// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/internal/adapter"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/store"
	"github.com/MKhiriev/go-provenance-keeper/models"
)

type reconciliationService struct {
	ledger          adapter.LedgerAdapter
	products        store.ProductRepository
	inconsistencies store.InconsistencyRepository

	// one pass at a time; the admin endpoint and the worker may overlap
	mu sync.Mutex

	logger *logger.Logger
}

func NewReconciliationService(
	ledger adapter.LedgerAdapter,
	products store.ProductRepository,
	inconsistencies store.InconsistencyRepository,
	logger *logger.Logger,
) ReconciliationService {
	return &reconciliationService{
		ledger:          ledger,
		products:        products,
		inconsistencies: inconsistencies,
		logger:          logger,
	}
}

// Reconcile implements [ReconciliationService]. Backfilled rows have no
// registrant: the ledger does not know which principal submitted them.
func (s *reconciliationService) Reconcile(ctx context.Context) (models.ReconcileReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)

	registrations, err := s.ledger.Registrations(ctx)
	if err != nil {
		return models.ReconcileReport{}, fmt.Errorf("read ledger registrations: %w", err)
	}

	report := models.ReconcileReport{Scanned: len(registrations), Backfilled: []string{}}
	now := time.Now()

	for _, reg := range registrations {
		exists, err := s.products.Exists(ctx, reg.ProductID)
		if err != nil {
			return report, fmt.Errorf("check catalog for %q: %w", reg.ProductID, err)
		}

		if !exists {
			_, err = s.products.Insert(ctx, models.Product{
				ProductID:    reg.ProductID,
				Name:         reg.Name,
				Manufacturer: reg.Manufacturer,
				TxRef:        reg.TxRef,
				Source:       models.SourceReconciliation,
			})
			switch {
			case errors.Is(err, store.ErrDuplicateProductID):
				// a registration landed between Exists and Insert
			case err != nil:
				return report, fmt.Errorf("backfill %q: %w", reg.ProductID, err)
			default:
				report.Backfilled = append(report.Backfilled, reg.ProductID)
				log.Info().Str("product_id", reg.ProductID).Str("tx", reg.TxRef).Msg("catalog row backfilled from ledger")
			}
		}

		resolved, err := s.inconsistencies.ResolveInconsistencies(ctx, reg.ProductID, now)
		if err != nil {
			return report, fmt.Errorf("resolve inconsistencies of %q: %w", reg.ProductID, err)
		}
		report.Resolved += int(resolved)
	}

	log.Info().
		Int("scanned", report.Scanned).
		Int("backfilled", len(report.Backfilled)).
		Int("resolved", report.Resolved).
		Msg("reconciliation finished")

	return report, nil
}
