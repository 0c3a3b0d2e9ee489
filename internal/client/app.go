package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/notes-keeper/internal/adapter"
	"github.com/MKhiriev/notes-keeper/internal/config"
	"github.com/MKhiriev/notes-keeper/internal/controller"
	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/internal/workers"
)

var errNoUI = errors.New("client: ui is nil")

var _ Client = (*App)(nil)

type App struct {
	adapter adapter.ServerAdapter
	ui      UI
	workers *workers.Workers
	logger  *logger.Logger
}

// NewApp builds the client around an already connected adapter. The
// controller's refresh worker runs for as long as the UI does.
func NewApp(serverAdapter adapter.ServerAdapter, ctrl *controller.Controller, ui UI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}

	return &App{
		adapter: serverAdapter,
		ui:      ui,
		workers: workers.NewWorkers(ctrl.RefreshWorker(cfg.RefreshInterval)),
		logger:  logger,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer func() {
		if err := a.adapter.Close(); err != nil {
			a.logger.Err(err).Str("func", "*App.run").Msg("error closing server adapter")
		}
	}()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
