package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
)

// sessionRepository stores the ids of logged out sessions in
// "revoked_sessions". Rows are kept until the token would have expired
// anyway.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// RevokeSession is idempotent.
func (r *sessionRepository) RevokeSession(ctx context.Context, sessionID string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := revokeSessionQuery(r.db.Dialect(), sessionID, expiresAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.RevokeSession").Msg("error revoking session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) IsSessionRevoked(ctx context.Context, sessionID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := sessionRevokedQuery(r.db.Dialect(), sessionID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*sessionRepository.IsSessionRevoked").Msg("error checking session")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// PurgeExpiredSessions deletes revocations whose token has expired.
func (r *sessionRepository) PurgeExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := purgeSessionsQuery(r.db.Dialect(), now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.PurgeExpiredSessions").Msg("error purging sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}
