package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-provenance-keeper/internal/adapter"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/mock"
	"github.com/MKhiriev/go-provenance-keeper/internal/service"
	"github.com/MKhiriev/go-provenance-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	runs int
	err  error
}

func (f *fakeUI) Run(ctx context.Context) error {
	f.runs++
	return f.err
}

func TestNewApp_RequiresUI(t *testing.T) {
	_, err := NewApp(&service.ClientServices{}, nil, logger.Nop())
	assert.ErrorIs(t, err, errNoUI)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name       string
		versionErr error
		uiErr      error
	}{
		{name: "server up"},
		{name: "server down still opens ui", versionErr: adapter.ErrServiceUnavailable},
		{name: "ui error is returned", uiErr: errors.New("no tty")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := mock.NewMockClientVerifyService(gomock.NewController(t))
			verifier.EXPECT().ServerVersion(gomock.Any()).Return(models.VersionResponse{Version: "1.0.0"}, tt.versionErr)

			ui := &fakeUI{err: tt.uiErr}
			app, err := NewApp(&service.ClientServices{VerifyService: verifier}, ui, logger.Nop())
			require.NoError(t, err)

			err = app.Run()
			assert.Equal(t, 1, ui.runs)
			if tt.uiErr != nil {
				assert.ErrorIs(t, err, tt.uiErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
