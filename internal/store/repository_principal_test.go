package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &DB{DB: db, dialect: DialectPostgres, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var principalRowColumns = []string{"id", "username", "password_hash", "role", "active", "created_at"}

func TestCreatePrincipal_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPrincipalRepository(db, logger.Nop())

	now := time.Now()
	mock.ExpectQuery("INSERT INTO principals").
		WithArgs("acme", "hash", "manufacturer", true).
		WillReturnRows(sqlmock.NewRows(principalRowColumns).AddRow(1, "acme", "hash", "manufacturer", true, now))

	created, err := repo.CreatePrincipal(context.Background(), models.Principal{
		Username: "acme", PasswordHash: "hash", Role: models.RoleManufacturer, Active: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, models.RoleManufacturer, created.Role)
	assert.True(t, created.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePrincipal_UniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"postgres", pgError(pgerrcode.UniqueViolation)},
		{"sqlite", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewPrincipalRepository(db, logger.Nop())

			mock.ExpectQuery("INSERT INTO principals").WillReturnError(tt.err)

			_, err := repo.CreatePrincipal(context.Background(), models.Principal{Username: "acme"})
			assert.ErrorIs(t, err, ErrUsernameTaken)
		})
	}
}

func TestCreatePrincipal_OtherError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPrincipalRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO principals").WillReturnError(errors.New("boom"))

	_, err := repo.CreatePrincipal(context.Background(), models.Principal{Username: "acme"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrUsernameTaken)
}

func TestFindPrincipalByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPrincipalRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT (.+) FROM principals WHERE username = \\$1").
			WithArgs("acme").
			WillReturnRows(sqlmock.NewRows(principalRowColumns).AddRow(5, "acme", "hash", "consumer", false, time.Now()))

		p, err := repo.FindPrincipalByUsername(context.Background(), "acme")
		require.NoError(t, err)
		assert.Equal(t, int64(5), p.ID)
		assert.False(t, p.Active)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPrincipalRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT (.+) FROM principals").WillReturnError(sql.ErrNoRows)

		_, err := repo.FindPrincipalByUsername(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrPrincipalNotFound)
	})

	t.Run("db error is not not-found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPrincipalRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT (.+) FROM principals").WillReturnError(errors.New("conn reset"))

		_, err := repo.FindPrincipalByUsername(context.Background(), "acme")
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.NotErrorIs(t, err, ErrPrincipalNotFound)
	})
}

func TestFindPrincipalByID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPrincipalRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM principals WHERE id = \\$1").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(principalRowColumns).AddRow(9, "root", "hash", "admin", true, time.Now()))

	p, err := repo.FindPrincipalByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, p.Role)
}

func TestListPrincipals(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPrincipalRepository(db, logger.Nop())

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM principals ORDER BY id").
		WillReturnRows(sqlmock.NewRows(principalRowColumns).
			AddRow(1, "root", "h1", "admin", true, now).
			AddRow(2, "acme", "h2", "manufacturer", false, now))

	principals, err := repo.ListPrincipals(context.Background())
	require.NoError(t, err)
	require.Len(t, principals, 2)
	assert.Equal(t, "acme", principals[1].Username)
}

func TestListPrincipals_ReadErrorIsNotEmpty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPrincipalRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM principals").WillReturnError(errors.New("timeout"))

	principals, err := repo.ListPrincipals(context.Background())
	assert.Nil(t, principals)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestToggleActive(t *testing.T) {
	t.Run("flips in one statement", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPrincipalRepository(db, logger.Nop())

		mock.ExpectQuery("UPDATE principals SET active = NOT active WHERE id = \\$1 RETURNING").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(principalRowColumns).AddRow(2, "acme", "h", "manufacturer", false, time.Now()))

		p, err := repo.ToggleActive(context.Background(), 2)
		require.NoError(t, err)
		assert.False(t, p.Active)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown principal", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewPrincipalRepository(db, logger.Nop())

		mock.ExpectQuery("UPDATE principals").
			WillReturnRows(sqlmock.NewRows(principalRowColumns))

		_, err := repo.ToggleActive(context.Background(), 404)
		assert.ErrorIs(t, err, ErrPrincipalNotFound)
	})
}
