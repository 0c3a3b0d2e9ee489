package main

import (
	"fmt"

	"github.com/MKhiriev/notes-keeper/internal/adapter"
	"github.com/MKhiriev/notes-keeper/internal/client"
	"github.com/MKhiriev/notes-keeper/internal/config"
	"github.com/MKhiriev/notes-keeper/internal/controller"
	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/internal/tui"
	"github.com/MKhiriev/notes-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewClientLogger("notes-client", "")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctrl := controller.New(serverAdapter, log)

	ui, err := tui.New(ctrl, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(serverAdapter, ctrl, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
