package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-provenance-keeper/internal/adapter"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/validators"
	"github.com/MKhiriev/go-provenance-keeper/models"
)

type verificationService struct {
	ledger    adapter.LedgerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewVerificationService(ledger adapter.LedgerAdapter, logger *logger.Logger) VerificationService {
	return &verificationService{
		ledger:    ledger,
		validator: validators.NewProductValidator(),
		logger:    logger,
	}
}

// Verify implements [VerificationService]. A product missing from the
// ledger is a result with status unregistered, even when the catalog has a
// row for it.
func (s *verificationService) Verify(ctx context.Context, productID string) (models.VerificationResult, error) {
	if err := s.validator.Validate(ctx, productID); err != nil {
		return models.VerificationResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	result, err := s.ledger.Verify(ctx, productID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("product_id", productID).Msg("ledger verification failed")
		return models.VerificationResult{}, err
	}

	logger.FromContext(ctx).Debug().Str("product_id", productID).Str("status", string(result.Status)).Msg("product verified")
	return result, nil
}
