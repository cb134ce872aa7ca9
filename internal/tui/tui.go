// Package tui is the terminal verification client: type or paste a product
// identifier, see whether the ledger knows it, copy an identifier from the
// session history.
package tui

import (
	"context"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/service"
	"github.com/MKhiriev/go-provenance-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.VerifyService == nil {
		return nil, ErrNoServices
	}

	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the verify screen until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newVerifyModel(ctx, t.services.VerifyService, t.buildInfo)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Error().Err(err).Msg("tui stopped with error")
		return err
	}

	return nil
}
