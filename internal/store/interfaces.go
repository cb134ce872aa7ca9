package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PrincipalRepository persists principals. Principals are never deleted.
type PrincipalRepository interface {
	CreatePrincipal(ctx context.Context, principal models.Principal) (models.Principal, error)
	FindPrincipalByUsername(ctx context.Context, username string) (models.Principal, error)
	FindPrincipalByID(ctx context.Context, id int64) (models.Principal, error)
	ListPrincipals(ctx context.Context) ([]models.Principal, error)
	// ToggleActive flips the active flag in one statement and returns the
	// principal after the flip.
	ToggleActive(ctx context.Context, id int64) (models.Principal, error)
}

// ProductRepository is the catalog store. Rows are inserted once and never
// updated or deleted.
type ProductRepository interface {
	Insert(ctx context.Context, product models.Product) (models.Product, error)
	ListByRegistrant(ctx context.Context, registrantID int64) ([]models.Product, error)
	ListAll(ctx context.Context) ([]models.Product, error)
	Exists(ctx context.Context, productID string) (bool, error)
}

// InconsistencyRepository keeps track of ledger registrations whose catalog
// insert failed.
type InconsistencyRepository interface {
	RecordInconsistency(ctx context.Context, inconsistency models.Inconsistency) (models.Inconsistency, error)
	ListInconsistencies(ctx context.Context, onlyOpen bool) ([]models.Inconsistency, error)
	ResolveInconsistencies(ctx context.Context, productID string, resolvedAt time.Time) (int64, error)
}

// SessionRepository stores revoked session ids until they expire.
type SessionRepository interface {
	RevokeSession(ctx context.Context, sessionID string, expiresAt time.Time) error
	IsSessionRevoked(ctx context.Context, sessionID string) (bool, error)
	PurgeExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
