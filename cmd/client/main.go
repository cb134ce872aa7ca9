package main

import (
	"fmt"

	"github.com/MKhiriev/go-provenance-keeper/internal/adapter"
	"github.com/MKhiriev/go-provenance-keeper/internal/client"
	"github.com/MKhiriev/go-provenance-keeper/internal/config"
	"github.com/MKhiriev/go-provenance-keeper/internal/logger"
	"github.com/MKhiriev/go-provenance-keeper/internal/service"
	"github.com/MKhiriev/go-provenance-keeper/internal/tui"
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

	log := logger.NewClientLogger("provenance-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
