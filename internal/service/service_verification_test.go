package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-provenance-keeper/internal/adapter"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/mock"
	"github.com/MKhiriev/go-provenance-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVerificationService_Verify(t *testing.T) {
	genuine := models.VerificationResult{ProductID: "SKU-1", Name: "Widget", Manufacturer: "Acme", Status: models.StatusGenuine}

	tests := []struct {
		name      string
		productID string
		setup     func(l *mock.MockLedgerAdapter)
		want      models.VerificationResult
		wantErr   error
	}{
		{
			name:      "genuine",
			productID: "SKU-1",
			setup: func(l *mock.MockLedgerAdapter) {
				l.EXPECT().Verify(gomock.Any(), "SKU-1").Return(genuine, nil)
			},
			want: genuine,
		},
		{
			name:      "unregistered is not an error",
			productID: "SKU-999",
			setup: func(l *mock.MockLedgerAdapter) {
				l.EXPECT().Verify(gomock.Any(), "SKU-999").Return(models.UnregisteredResult("SKU-999"), nil)
			},
			want: models.UnregisteredResult("SKU-999"),
		},
		{
			name:      "ledger down",
			productID: "SKU-1",
			setup: func(l *mock.MockLedgerAdapter) {
				l.EXPECT().Verify(gomock.Any(), "SKU-1").Return(models.VerificationResult{}, adapter.ErrLedgerUnavailable)
			},
			wantErr: adapter.ErrLedgerUnavailable,
		},
		{
			name:      "empty id never reaches the ledger",
			productID: "",
			setup:     func(*mock.MockLedgerAdapter) {},
			wantErr:   ErrInvalidDataProvided,
		},
		{
			name:      "id with slash is looked up as is",
			productID: "lot/42",
			setup: func(l *mock.MockLedgerAdapter) {
				l.EXPECT().Verify(gomock.Any(), "lot/42").Return(models.UnregisteredResult("lot/42"), nil)
			},
			want: models.UnregisteredResult("lot/42"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ledger := mock.NewMockLedgerAdapter(ctrl)
			tt.setup(ledger)

			got, err := NewVerificationService(ledger, logger.Nop()).Verify(context.Background(), tt.productID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
