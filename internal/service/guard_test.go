package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/mock"
	"github.com/MKhiriev/go-provenance-keeper/internal/store"
	"github.com/MKhiriev/go-provenance-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Allows
// ─────────────────────────────────────────────

func TestAllows_Table(t *testing.T) {
	tests := []struct {
		role       models.Role
		capability Capability
		want       bool
	}{
		{models.RoleManufacturer, CapRegisterProduct, true},
		{models.RoleManufacturer, CapListOwnProducts, true},
		{models.RoleManufacturer, CapAdminister, false},
		{models.RoleManufacturer, CapVerifyProduct, true},

		{models.RoleConsumer, CapRegisterProduct, false},
		{models.RoleConsumer, CapListOwnProducts, false},
		{models.RoleConsumer, CapAdminister, false},
		{models.RoleConsumer, CapVerifyProduct, true},

		{models.RoleAdmin, CapRegisterProduct, false},
		{models.RoleAdmin, CapListOwnProducts, false},
		{models.RoleAdmin, CapAdminister, true},
		{models.RoleAdmin, CapVerifyProduct, true},

		{"", CapVerifyProduct, true},
		{"", CapRegisterProduct, false},
		{"auditor", CapAdminister, false},
		{models.RoleAdmin, "delete_everything", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.capability), func(t *testing.T) {
			assert.Equal(t, tt.want, Allows(tt.role, tt.capability))
		})
	}
}

// ─────────────────────────────────────────────
// Guard.Require
// ─────────────────────────────────────────────

func manufacturerSession(id int64) models.Session {
	return models.Session{ID: "jti-m", PrincipalID: id, Username: "acme", Role: models.RoleManufacturer, Active: true}
}

func adminSession(id int64) models.Session {
	return models.Session{ID: "jti-a", PrincipalID: id, Username: "root", Role: models.RoleAdmin, Active: true}
}

func consumerSession(id int64) models.Session {
	return models.Session{ID: "jti-c", PrincipalID: id, Username: "bob", Role: models.RoleConsumer, Active: true}
}

func TestGuard_Require_DeniedWithoutStorageLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	principals := mock.NewMockPrincipalRepository(ctrl)
	// no EXPECT: the store must not be touched
	g := NewGuard(principals, logger.Nop())

	err := g.Require(context.Background(), consumerSession(3), CapRegisterProduct)
	assert.ErrorIs(t, err, ErrDenied)

	err = g.Require(context.Background(), manufacturerSession(2), CapAdminister)
	assert.ErrorIs(t, err, ErrDenied)
}

func TestGuard_Require_VerifyIsOpenToAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := NewGuard(mock.NewMockPrincipalRepository(ctrl), logger.Nop())

	require.NoError(t, g.Require(context.Background(), models.Session{}, CapVerifyProduct))
}

func TestGuard_Require_ReloadsPrincipal(t *testing.T) {
	ctx := context.Background()
	session := manufacturerSession(2)

	tests := []struct {
		name      string
		principal models.Principal
		findErr   error
		wantErr   error
	}{
		{
			name:      "active manufacturer passes",
			principal: models.Principal{ID: 2, Role: models.RoleManufacturer, Active: true},
		},
		{
			name:      "suspended since login",
			principal: models.Principal{ID: 2, Role: models.RoleManufacturer, Active: false},
			wantErr:   ErrAccountDisabled,
		},
		{
			name:      "role in storage differs from token",
			principal: models.Principal{ID: 2, Role: models.RoleConsumer, Active: true},
			wantErr:   ErrDenied,
		},
		{
			name:    "principal deleted",
			findErr: store.ErrPrincipalNotFound,
			wantErr: ErrDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			principals := mock.NewMockPrincipalRepository(ctrl)
			principals.EXPECT().FindPrincipalByID(ctx, int64(2)).Return(tt.principal, tt.findErr)

			err := NewGuard(principals, logger.Nop()).Require(ctx, session, CapRegisterProduct)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGuard_Require_StorageFailureIsWrapped(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	principals := mock.NewMockPrincipalRepository(ctrl)
	dbErr := errors.New("connection reset")
	principals.EXPECT().FindPrincipalByID(ctx, int64(1)).Return(models.Principal{}, dbErr)

	err := NewGuard(principals, logger.Nop()).Require(ctx, adminSession(1), CapAdminister)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrDenied)
}

func TestGuard_Require_AnonymousPrivilegedDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := NewGuard(mock.NewMockPrincipalRepository(ctrl), logger.Nop())

	// role claim without a principal id never reaches the store
	err := g.Require(context.Background(), models.Session{Role: models.RoleAdmin}, CapAdminister)
	assert.ErrorIs(t, err, ErrDenied)
}
