package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-provenance-keeper/internal/config"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.App
		driver  string
		want    models.VersionResponse
		wantErr error
	}{
		{
			name:   "release build on ethereum",
			cfg:    config.App{Version: "1.4.0", BuildDate: "2026-10-01", BuildCommit: "abc123"},
			driver: "ethereum",
			want:   models.VersionResponse{Version: "1.4.0", Date: "2026-10-01", Commit: "abc123", Ledger: "ethereum"},
		},
		{
			name:   "configured version only",
			cfg:    config.App{Version: "dev"},
			driver: "local",
			want:   models.VersionResponse{Version: "dev", Ledger: "local"},
		},
		{
			name:    "missing version",
			cfg:     config.App{},
			wantErr: ErrVersionIsNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, tt.driver, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			assert.Equal(t, tt.want, svc.GetAppInfo(ctx))
		})
	}
}
