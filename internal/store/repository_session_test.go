package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevokeSession(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO revoked_sessions (.+) ON CONFLICT \\(session_id\\) DO NOTHING").
		WithArgs("jti", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RevokeSession(context.Background(), "jti", time.Now().Add(time.Hour)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsSessionRevoked(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM revoked_sessions").
		WithArgs("jti").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM revoked_sessions").
		WithArgs("other").
		WillReturnError(errors.New("db down"))

	revoked, err := repo.IsSessionRevoked(context.Background(), "jti")
	require.NoError(t, err)
	assert.True(t, revoked)

	_, err = repo.IsSessionRevoked(context.Background(), "other")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestPurgeExpiredSessions(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM revoked_sessions WHERE expires_at < \\$1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.PurgeExpiredSessions(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
