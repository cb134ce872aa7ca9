// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-provenance-keeper/internal/adapter"
	"github.com/MKhiriev/go-provenance-keeper/internal/artifact"
	"github.com/MKhiriev/go-provenance-keeper/internal/config"
	"github.com/MKhiriev/go-provenance-keeper/internal/handler"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/server"
	"github.com/MKhiriev/go-provenance-keeper/internal/service"
	"github.com/MKhiriev/go-provenance-keeper/internal/store"
	"github.com/MKhiriev/go-provenance-keeper/internal/workers"
	"github.com/MKhiriev/go-provenance-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("provenance-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildInfo.Stamped() {
		cfg.App.Version = buildInfo.Version
	}
	cfg.App.BuildDate, cfg.App.BuildCommit = buildInfo.Date, buildInfo.Commit

	log.Debug().
		Str("ledger_driver", cfg.Ledger.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to catalog database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating catalog database")
	}

	storages := store.NewStorages(db, log)

	ledger, err := newLedger(cfg.Ledger, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ledger adapter")
	}

	encoder := artifact.NewQREncoder(cfg.Storage.Files.QRDir, log)

	services, err := service.NewServices(storages, ledger, encoder, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.App.AdminUsername != "" {
		if err = services.AuthService.EnsureAdmin(ctx, cfg.App.AdminUsername, cfg.App.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("error seeding admin principal")
		}
	}

	handlers, err := handler.NewHandlers(services, encoder, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var healthSetter workers.HealthSetter
	if handlers.GRPC != nil {
		healthSetter = handlers.GRPC.Health()
	}

	background := workers.NewWorkers(log,
		workers.NewReconcileWorker(services.ReconciliationService, cfg.Workers.ReconcileInterval, log),
		workers.NewHealthWorker(healthSetter, map[string]workers.Pinger{
			"ledger":  ledger,
			"catalog": workers.PingFunc(db.PingContext),
		}, cfg.Workers.HealthInterval, log),
		workers.NewSessionPurgeWorker(storages.SessionRepository, cfg.App.TokenDuration, log),
	)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background.Run(ctx)
	srv.RunServer(ctx)
	background.Stop()
}

// newLedger picks the ledger backend named by cfg.Driver.
func newLedger(cfg config.Ledger, log *logger.Logger) (adapter.LedgerAdapter, error) {
	switch cfg.Driver {
	case config.LedgerDriverLocal:
		return adapter.NewLocalLedger(cfg.LocalPath, log)
	case config.LedgerDriverEthereum:
		return adapter.NewEthereumLedger(cfg, log)
	default:
		return nil, fmt.Errorf("unknown ledger driver %q", cfg.Driver)
	}
}
