package service

import (
	"fmt"

	"github.com/MKhiriev/notes-keeper/internal/config"
	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/internal/store"
)

// Services groups every server-side service handed to the transport layer.
type Services struct {
	NotesService   NotesService
	AppInfoService AppInfoService
}

// NewServices wires the note service, decorated with call logging, and the
// app info service.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	notes := NewNotesLoggingService().Wrap(NewNotesService(storages.Notes, logger))

	return &Services{
		NotesService:   notes,
		AppInfoService: appInfo,
	}, nil
}
