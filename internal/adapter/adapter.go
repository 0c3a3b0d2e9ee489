package adapter

import (
	"github.com/MKhiriev/notes-keeper/internal/config"
	"github.com/MKhiriev/notes-keeper/internal/logger"
)

// NewServerAdapter returns the gRPC adapter when cfg.GRPCAddress is set and
// the REST adapter otherwise.
func NewServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	if cfg.GRPCAddress != "" {
		logger.Info().Str("address", cfg.GRPCAddress).Msg("using gRPC server adapter")
		return NewGRPCServerAdapter(cfg, logger)
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("using HTTP server adapter")
	return NewHTTPServerAdapter(cfg, logger)
}
