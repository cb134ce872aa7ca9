package store

import "github.com/MKhiriev/go-provenance-keeper/internal/logger"

// Storages groups every repository built on the catalog database.
type Storages struct {
	PrincipalRepository     PrincipalRepository
	ProductRepository       ProductRepository
	InconsistencyRepository InconsistencyRepository
	SessionRepository       SessionRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		PrincipalRepository:     NewPrincipalRepository(db, logger),
		ProductRepository:       NewProductRepository(db, logger),
		InconsistencyRepository: NewInconsistencyRepository(db, logger),
		SessionRepository:       NewSessionRepository(db, logger),
	}
}
