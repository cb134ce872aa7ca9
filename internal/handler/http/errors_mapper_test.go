package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-provenance-keeper/internal/adapter"
	"github.com/MKhiriev/go-provenance-keeper/internal/app"
	"github.com/MKhiriev/go-provenance-keeper/internal/service"
	"github.com/MKhiriev/go-provenance-keeper/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "duplicate before ledger write",
			err:         store.ErrDuplicateProductID,
			wantStatus:  http.StatusConflict,
			wantCode:    app.CodeDuplicateProductID,
			wantMessage: app.MsgDuplicateProductID,
		},
		{
			name:        "duplicate after ledger write",
			err:         fmt.Errorf("%w: %w", service.ErrCatalogInconsistent, store.ErrDuplicateProductID),
			wantStatus:  http.StatusConflict,
			wantCode:    app.CodeDuplicateProductID,
			wantMessage: app.MsgDuplicateAfterLedger,
		},
		{
			name:        "catalog down after ledger write",
			err:         fmt.Errorf("%w: %w", service.ErrCatalogInconsistent, store.ErrExecutingStatement),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    app.CodeCatalogInconsistent,
			wantMessage: app.MsgCatalogInconsistent,
		},
		{
			name:        "ledger unavailable",
			err:         fmt.Errorf("%w: limit exceeded", adapter.ErrLedgerUnavailable),
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    app.CodeLedgerUnavailable,
			wantMessage: app.MsgLedgerUnavailable,
		},
		{
			name:        "unknown",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    app.CodeInternal,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body.Error)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}
