package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/notes-keeper/internal/adapter"
	"github.com/MKhiriev/notes-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &cli{
		out:       os.Stdout,
		dial:      adapter.NewServerAdapter,
		buildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	}
	if err := newRootCmd(c).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
