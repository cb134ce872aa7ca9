// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/internal/adapter"
	"github.com/MKhiriev/go-provenance-keeper/internal/artifact"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/store"
	"github.com/MKhiriev/go-provenance-keeper/internal/validators"
	"github.com/MKhiriev/go-provenance-keeper/models"
)

// artifactTimeout bounds the background QR generation.
const artifactTimeout = 30 * time.Second

type registrationService struct {
	guard           Guard
	ledger          adapter.LedgerAdapter
	products        store.ProductRepository
	inconsistencies store.InconsistencyRepository
	encoder         artifact.Encoder
	validator       validators.Validator

	logger *logger.Logger
}

// NewRegistrationService constructs a [RegistrationService]. encoder may be
// nil, in which case no artifact is produced.
func NewRegistrationService(
	guard Guard,
	ledger adapter.LedgerAdapter,
	products store.ProductRepository,
	inconsistencies store.InconsistencyRepository,
	encoder artifact.Encoder,
	logger *logger.Logger,
) RegistrationService {
	return &registrationService{
		guard:           guard,
		ledger:          ledger,
		products:        products,
		inconsistencies: inconsistencies,
		encoder:         encoder,
		validator:       validators.NewProductValidator(),
		logger:          logger,
	}
}

// SubmitRegistration implements [RegistrationService].
//
// Order of effects:
//  1. authorization and validation, nothing is written on failure;
//  2. ledger write, its error is returned as is and the catalog is untouched;
//  3. catalog insert with the ledger transaction reference;
//  4. artifact generation in the background.
//
// When step 3 fails after step 2 succeeded the product exists on the ledger
// only. That is recorded as an [models.Inconsistency] and reported as
// [ErrCatalogInconsistent] wrapping the catalog error. Nothing is retried
// or rolled back; the ledger is append-only.
func (s *registrationService) SubmitRegistration(ctx context.Context, session models.Session, req models.RegistrationRequest) (models.Product, error) {
	log := logger.FromContext(ctx)

	if err := s.guard.Require(ctx, session, CapRegisterProduct); err != nil {
		return models.Product{}, err
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// a client hanging up must not abandon a submitted transaction before
	// its reference is recorded
	txRef, err := s.ledger.Register(context.WithoutCancel(ctx), req.LedgerRegistration())
	if err != nil {
		log.Err(err).Str("product_id", req.ProductID).Msg("ledger registration failed")
		return models.Product{}, err
	}

	registrantID := session.PrincipalID
	product, err := s.products.Insert(context.WithoutCancel(ctx), models.Product{
		ProductID:    req.ProductID,
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		TxRef:        txRef,
		RegistrantID: &registrantID,
		Source:       models.SourceRegistration,
	})
	if err != nil {
		return models.Product{}, s.recordInconsistency(ctx, req.ProductID, txRef, registrantID, err)
	}

	log.Info().
		Str("product_id", product.ProductID).
		Str("tx", txRef).
		Int64("principal_id", registrantID).
		Msg("product registered")

	s.generateArtifact(ctx, product.ProductID)

	return product, nil
}

func (s *registrationService) recordInconsistency(ctx context.Context, productID, txRef string, registrantID int64, cause error) error {
	log := logger.FromContext(ctx)

	reason := "catalog insert failed: " + cause.Error()
	if errors.Is(cause, store.ErrDuplicateProductID) {
		reason = "product id already in catalog"
	}

	log.Error().
		Err(cause).
		Str("product_id", productID).
		Str("tx", txRef).
		Int64("principal_id", registrantID).
		Msg("ledger accepted registration but catalog did not record it")

	_, err := s.inconsistencies.RecordInconsistency(context.WithoutCancel(ctx), models.Inconsistency{
		ProductID:    productID,
		TxRef:        txRef,
		RegistrantID: &registrantID,
		Reason:       reason,
		DetectedAt:   time.Now(),
	})
	if err != nil {
		log.Err(err).Str("product_id", productID).Str("tx", txRef).Msg("inconsistency could not be persisted")
	}

	return fmt.Errorf("%w: %w", ErrCatalogInconsistent, cause)
}

// generateArtifact runs detached from the request; its failure is logged
// and never affects the registration result.
func (s *registrationService) generateArtifact(ctx context.Context, productID string) {
	if s.encoder == nil {
		return
	}

	log := logger.FromContext(ctx)
	go func() {
		actx, cancel := context.WithTimeout(context.WithoutCancel(ctx), artifactTimeout)
		defer cancel()

		if _, err := s.encoder.Encode(actx, productID); err != nil {
			log.Err(err).Str("product_id", productID).Msg("qr code generation failed")
		}
	}()
}

// ListOwnProducts implements [RegistrationService].
func (s *registrationService) ListOwnProducts(ctx context.Context, session models.Session) ([]models.Product, error) {
	if err := s.guard.Require(ctx, session, CapListOwnProducts); err != nil {
		return nil, err
	}

	products, err := s.products.ListByRegistrant(ctx, session.PrincipalID)
	if err != nil {
		return nil, fmt.Errorf("list own products: %w", err)
	}

	return products, nil
}
