package service

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-provenance-keeper/internal/adapter"
	"github.com/MKhiriev/go-provenance-keeper/models"
)

const historySize = 20

type clientVerifyService struct {
	serverAdapter adapter.ServerAdapter

	mu      sync.Mutex
	history []models.VerificationResult
}

func NewClientVerifyService(serverAdapter adapter.ServerAdapter) ClientVerifyService {
	return &clientVerifyService{serverAdapter: serverAdapter}
}

func (s *clientVerifyService) Verify(ctx context.Context, productID string) (models.VerificationResult, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return models.VerificationResult{}, ErrInvalidDataProvided
	}

	result, err := s.serverAdapter.Verify(ctx, productID)
	if err != nil {
		return models.VerificationResult{}, mapAdapterError(err)
	}

	s.mu.Lock()
	s.history = append([]models.VerificationResult{result}, s.history...)
	if len(s.history) > historySize {
		s.history = s.history[:historySize]
	}
	s.mu.Unlock()

	return result, nil
}

func (s *clientVerifyService) ServerVersion(ctx context.Context) (models.VersionResponse, error) {
	version, err := s.serverAdapter.Version(ctx)
	if err != nil {
		return models.VersionResponse{}, mapAdapterError(err)
	}

	return version, nil
}

func (s *clientVerifyService) History() []models.VerificationResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.VerificationResult, len(s.history))
	copy(out, s.history)
	return out
}
