package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

// principalRepository is the SQL implementation of [PrincipalRepository]
// over the "principals" table.
type principalRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPrincipalRepository constructs a [PrincipalRepository] backed by db.
func NewPrincipalRepository(db *DB, logger *logger.Logger) PrincipalRepository {
	logger.Debug().Msg("creating principal repository")
	return &principalRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePrincipal inserts principal and returns it with the server-assigned
// ID and CreatedAt.
//
// Error handling:
//   - unique violation on username → [ErrUsernameTaken].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *principalRepository) CreatePrincipal(ctx context.Context, principal models.Principal) (models.Principal, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertPrincipalQuery(r.db.Dialect(), principal)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanPrincipal(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*principalRepository.CreatePrincipal").Msg("error inserting principal")
		if r.db.classify(err) == UniqueViolation {
			return models.Principal{}, ErrUsernameTaken
		}
		return models.Principal{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindPrincipalByUsername returns [ErrPrincipalNotFound] when no principal
// has that username.
func (r *principalRepository) FindPrincipalByUsername(ctx context.Context, username string) (models.Principal, error) {
	return r.findOne(ctx, sq.Eq{"username": username}, "*principalRepository.FindPrincipalByUsername")
}

// FindPrincipalByID returns [ErrPrincipalNotFound] when no principal has id.
func (r *principalRepository) FindPrincipalByID(ctx context.Context, id int64) (models.Principal, error) {
	return r.findOne(ctx, sq.Eq{"id": id}, "*principalRepository.FindPrincipalByID")
}

func (r *principalRepository) findOne(ctx context.Context, where sq.Eq, funcName string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectPrincipalQuery(r.db.Dialect(), where)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	principal, err := scanPrincipal(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Principal{}, ErrPrincipalNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting principal")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return principal, nil
}

// ListPrincipals returns every principal ordered by id.
func (r *principalRepository) ListPrincipals(ctx context.Context) ([]models.Principal, error) {
	log := logger.FromContext(ctx)

	query, args, err := listPrincipalsQuery(r.db.Dialect())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*principalRepository.ListPrincipals").Msg("error selecting principals")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	principals := make([]models.Principal, 0)
	for rows.Next() {
		principal, err := scanPrincipal(rows)
		if err != nil {
			log.Err(err).Str("func", "*principalRepository.ListPrincipals").Msg("error scanning principal")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		principals = append(principals, principal)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*principalRepository.ListPrincipals").Msg("error iterating principals")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return principals, nil
}

// ToggleActive negates the active flag with a single UPDATE ... RETURNING.
// Two concurrent toggles therefore always end where they started.
func (r *principalRepository) ToggleActive(ctx context.Context, id int64) (models.Principal, error) {
	log := logger.FromContext(ctx)

	query, args, err := toggleActiveQuery(r.db.Dialect(), id)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	principal, err := scanPrincipal(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Principal{}, ErrPrincipalNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*principalRepository.ToggleActive").Msg("error toggling principal")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().Int64("principal_id", id).Bool("active", principal.Active).Msg("principal active flag toggled")
	return principal, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrincipal(row rowScanner) (models.Principal, error) {
	var (
		p         models.Principal
		role      string
		createdAt dbTime
	)
	if err := row.Scan(&p.ID, &p.Username, &p.PasswordHash, &role, &p.Active, &createdAt); err != nil {
		return models.Principal{}, err
	}
	p.CreatedAt = createdAt.Time
	p.Role = models.Role(role)

	return p, nil
}
