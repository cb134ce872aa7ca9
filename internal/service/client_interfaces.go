//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-provenance-keeper/models"
)

// ClientVerifyService is the terminal client's verification workflow.
type ClientVerifyService interface {
	// Verify asks the server about productID and remembers the answer.
	// Surrounding whitespace of productID is ignored.
	Verify(ctx context.Context, productID string) (models.VerificationResult, error)

	// ServerVersion returns the build information of the server.
	ServerVersion(ctx context.Context) (models.VersionResponse, error)

	// History returns the latest answers, newest first.
	History() []models.VerificationResult
}
