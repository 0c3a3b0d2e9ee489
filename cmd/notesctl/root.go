package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/notes-keeper/internal/adapter"
	"github.com/MKhiriev/notes-keeper/internal/config"
	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/models"
)

type dialFunc func(cfg config.ClientAdapter, log *logger.Logger) (adapter.ServerAdapter, error)

// cli holds what every subcommand shares: the output, the flags of the root
// command and the adapter opened before the subcommand runs.
type cli struct {
	out       io.Writer
	dial      dialFunc
	buildInfo models.AppBuildInfo

	serverURL   string
	grpcAddress string
	timeout     time.Duration
	hashKey     string
	configPath  string
	logFile     string
	asJSON      bool

	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:          "notesctl",
		Short:        "Manage notes on a notes-keeper server",
		Version:      c.buildInfo.Version(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.connect()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return c.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.serverURL, "server", "u", "", "Notes API base URL")
	flags.StringVar(&c.grpcAddress, "grpc-address", "", "Notes gRPC address host:port, overrides --server")
	flags.DurationVar(&c.timeout, "timeout", 0, "Request timeout (e.g., 10s)")
	flags.StringVar(&c.hashKey, "hash-key", "", "Security hash key")
	flags.StringVarP(&c.configPath, "config", "c", "", "JSON or YAML config file path")
	flags.StringVar(&c.logFile, "log-file", "", "Append debug logs to this file")
	flags.BoolVar(&c.asJSON, "json", false, "Print JSON instead of text")

	root.AddCommand(
		newListCmd(c),
		newGetCmd(c),
		newCreateCmd(c),
		newUpdateCmd(c),
		newDeleteCmd(c),
	)

	return root
}

func (c *cli) connect() error {
	c.logger = logger.Nop()
	if c.logFile != "" {
		c.logger = logger.NewClientLogger("notesctl", c.logFile)
	}

	cfg, err := config.ClientConfigFrom(&config.StructuredConfig{
		App: config.App{HashKey: c.hashKey},
		Adapter: config.Adapter{
			HTTPAddress:    c.serverURL,
			GRPCAddress:    c.grpcAddress,
			RequestTimeout: c.timeout,
		},
		FilePath: c.configPath,
	})
	if err != nil {
		return err
	}

	c.adapter, err = c.dial(cfg.Adapter, c.logger)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	return nil
}

func (c *cli) close() error {
	if c.adapter == nil {
		return nil
	}
	err := c.adapter.Close()
	c.adapter = nil
	return err
}
