package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/notes-keeper/internal/config"
	"github.com/MKhiriev/notes-keeper/internal/handler"
	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/internal/server"
	"github.com/MKhiriev/notes-keeper/internal/service"
	"github.com/MKhiriev/notes-keeper/internal/store"
	"github.com/MKhiriev/notes-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const connectTimeout = 30 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("notes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	connectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	storages, err := store.NewStorages(connectCtx, cfg.Storage.DB, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(context.Background()); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("server stopped")
}

func printBuildInfo() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
