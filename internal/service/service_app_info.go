package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/notes-keeper/internal/config"
	"github.com/MKhiriev/notes-keeper/internal/logger"
)

// appInfoService reports the version the server was configured with.
type appInfoService struct {
	version string
}

// NewAppInfoService trims cfg.Version and rejects it if nothing remains.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Info().Str("version", version).Msg("notes server version")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
