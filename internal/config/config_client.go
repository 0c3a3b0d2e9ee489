package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the notes API base URL used by the client.
	HTTPAddress string
	// GRPCAddress is the gRPC endpoint address used by the client. When set
	// it takes precedence over HTTPAddress.
	GRPCAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// HashKey signs request bodies with the HashSHA256 header when set.
	HashKey string
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the note list is re-fetched in the
	// background. Zero disables the job.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Workers contains background job settings.
	Workers ClientWorkers
	// Version is the client version shown in the UI.
	Version string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration, reading command-line flags.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags().
		withEnv().
		withFile().
		withDefaults().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

// ClientConfigFrom is the variant of [GetClientConfig] for programs that
// parse their own command line. Non-zero fields of overrides win over
// environment, file and defaults.
func ClientConfigFrom(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withConfig(overrides).
		withEnv().
		withFile().
		withDefaults().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			HashKey:        cfg.App.HashKey,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		Version: cfg.App.Version,
	}

	return clientCfg, clientCfg.validate()
}
