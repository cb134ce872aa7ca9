package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/service"
)

// startupCheckTimeout bounds the version check done before the UI opens.
const startupCheckTimeout = 3 * time.Second

var errNoUI = errors.New("client: ui is not configured")

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}

	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run checks the server and runs the UI. An unreachable server is only
// logged: the UI reports failures per verification.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	a.checkServer(ctx)

	return a.ui.Run(ctx)
}

func (a *App) checkServer(ctx context.Context) {
	if a.services == nil || a.services.VerifyService == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, startupCheckTimeout)
	defer cancel()

	version, err := a.services.VerifyService.ServerVersion(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server is not reachable at startup")
		return
	}
	a.logger.Info().Str("server_version", version.Version).Msg("connected to server")
}
