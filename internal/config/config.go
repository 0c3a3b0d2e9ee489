// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied to every field that no other source has set.
const (
	DefaultHTTPAddress           = ":5000"
	DefaultDatabaseURI           = "mongodb://localhost:27017/notesdb"
	DefaultAdapterAddress        = "http://localhost:5000"
	DefaultAdapterRequestTimeout = 10 * time.Second
	DefaultVersion               = "N/A"
)

// StructuredConfig is the top-level configuration container for the
// notes-keeper server and clients. It aggregates all sub-configurations and
// is populated by merging values from command-line flags, environment
// variables, an optional JSON or YAML file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the request integrity
	// key and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the note store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and rate limit settings for the
	// HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client-side view of the server: where to reach it
	// and how long to wait for an answer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for client background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	FilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the note database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Empty disables the check.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. ":5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens.
	// Empty disables the gRPC server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the context of every inbound request.
	// Zero means no timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the number of requests per second accepted by the HTTP
	// server. Zero disables rate limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token bucket size used together with RateLimit.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// DB holds connection settings for the note store.
type DB struct {
	// DSN is the database URL. Its scheme selects the backend:
	// mongodb://, postgres://, sqlite:// or memory://.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds settings of the client transport towards the server.
type Adapter struct {
	// HTTPAddress is the base URL of the notes HTTP API
	// (e.g. "http://localhost:5000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host:port of the notes gRPC API. When set the
	// client talks gRPC instead of HTTP.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for client background jobs.
type Workers struct {
	// RefreshInterval is the period of the background note list refresh.
	// Zero disables it.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// defaultConfig returns the values used for fields left unset by every
// other source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: DefaultVersion,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDatabaseURI},
		},
		Server: Server{
			HTTPAddress: DefaultHTTPAddress,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withFile().
		withDefaults().
		build()
}
