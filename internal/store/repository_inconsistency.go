package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/models"
)

type inconsistencyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewInconsistencyRepository constructs an [InconsistencyRepository] backed by db.
func NewInconsistencyRepository(db *DB, logger *logger.Logger) InconsistencyRepository {
	logger.Debug().Msg("creating inconsistency repository")
	return &inconsistencyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *inconsistencyRepository) RecordInconsistency(ctx context.Context, inconsistency models.Inconsistency) (models.Inconsistency, error) {
	log := logger.FromContext(ctx)

	if inconsistency.DetectedAt.IsZero() {
		inconsistency.DetectedAt = time.Now()
	}

	query, args, err := insertInconsistencyQuery(r.db.Dialect(), inconsistency)
	if err != nil {
		return models.Inconsistency{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	stored, err := scanInconsistency(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*inconsistencyRepository.RecordInconsistency").Msg("error inserting inconsistency")
		return models.Inconsistency{}, fmt.Errorf("%w: %w: %w", ErrInconsistencyNotSaved, ErrExecutingStatement, err)
	}

	return stored, nil
}

func (r *inconsistencyRepository) ListInconsistencies(ctx context.Context, onlyOpen bool) ([]models.Inconsistency, error) {
	log := logger.FromContext(ctx)

	query, args, err := listInconsistenciesQuery(r.db.Dialect(), onlyOpen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*inconsistencyRepository.ListInconsistencies").Msg("error selecting inconsistencies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.Inconsistency, 0)
	for rows.Next() {
		inconsistency, err := scanInconsistency(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, inconsistency)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// ResolveInconsistencies closes every open inconsistency of productID and
// returns how many were closed.
func (r *inconsistencyRepository) ResolveInconsistencies(ctx context.Context, productID string, resolvedAt time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := resolveInconsistenciesQuery(r.db.Dialect(), productID, resolvedAt)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*inconsistencyRepository.ResolveInconsistencies").Msg("error resolving inconsistencies")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func scanInconsistency(row rowScanner) (models.Inconsistency, error) {
	var (
		i            models.Inconsistency
		registrantID sql.NullInt64
		detectedAt   dbTime
		resolvedAt   dbTime
	)
	if err := row.Scan(&i.ID, &i.ProductID, &i.TxRef, &registrantID, &i.Reason, &detectedAt, &resolvedAt); err != nil {
		return models.Inconsistency{}, err
	}
	i.DetectedAt = detectedAt.Time

	if registrantID.Valid {
		id := registrantID.Int64
		i.RegistrantID = &id
	}
	if resolvedAt.Valid {
		at := resolvedAt.Time
		i.ResolvedAt = &at
	}

	return i, nil
}
