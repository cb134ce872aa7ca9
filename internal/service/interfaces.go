// Package service holds the business logic of the provenance keeper: who may
// do what, how a registration travels from the ledger into the catalog, how
// products are verified, and the admin operations on principals.
//
// Services are stateless and safe for concurrent use. Every state change
// lives in the ledger or in the catalog.
package service

import (
	"context"

	"github.com/MKhiriev/go-provenance-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService authenticates principals and manages their sessions.
type AuthService interface {
	// Authenticate checks the credentials. It returns [ErrAuthFailed] for an
	// unknown username or a wrong password and [ErrAccountDisabled] for valid
	// credentials of a suspended principal.
	Authenticate(ctx context.Context, username, password string) (models.Principal, error)

	// SignUp creates an active manufacturer or consumer.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.Principal, error)

	// IssueSession signs a session token for principal.
	IssueSession(ctx context.Context, principal models.Principal) (models.Token, error)

	// ParseSession validates a token and rejects revoked ones.
	ParseSession(ctx context.Context, tokenString string) (models.Session, error)

	// Logout revokes the session until it would have expired anyway.
	Logout(ctx context.Context, session models.Session) error

	// EnsureAdmin creates the admin principal when no principal with that
	// username exists.
	EnsureAdmin(ctx context.Context, username, password string) error
}

// RegistrationService registers products on the ledger and in the catalog.
type RegistrationService interface {
	// SubmitRegistration writes to the ledger first and then to the catalog.
	SubmitRegistration(ctx context.Context, session models.Session, req models.RegistrationRequest) (models.Product, error)

	// ListOwnProducts lists the catalog rows registered by the session's
	// principal.
	ListOwnProducts(ctx context.Context, session models.Session) ([]models.Product, error)
}

// VerificationService answers whether a product is genuine. It consults
// the ledger only.
type VerificationService interface {
	Verify(ctx context.Context, productID string) (models.VerificationResult, error)
}

// AdminService bundles the operations reserved for admins.
type AdminService interface {
	ListPrincipals(ctx context.Context, session models.Session) ([]models.Principal, error)
	ListCatalog(ctx context.Context, session models.Session) ([]models.Product, error)
	ToggleActive(ctx context.Context, session models.Session, principalID int64) (models.Principal, error)
	ListInconsistencies(ctx context.Context, session models.Session, onlyOpen bool) ([]models.Inconsistency, error)
	Reconcile(ctx context.Context, session models.Session) (models.ReconcileReport, error)
}

// ReconciliationService closes the gap left when the ledger accepted a
// registration the catalog never recorded.
type ReconciliationService interface {
	// Reconcile backfills catalog rows for ledger registrations missing in
	// the catalog and resolves the matching open inconsistencies. Running it
	// twice in a row changes nothing the second time.
	Reconcile(ctx context.Context) (models.ReconcileReport, error)
}

// AppInfoService reports build information and the active ledger driver.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.VersionResponse
}
