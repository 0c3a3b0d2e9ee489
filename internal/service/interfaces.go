package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/notes-keeper/models"
)

// NotesService is the CRUD surface over the note store. It adds no business
// rules: empty titles and contents are accepted as they are.
type NotesService interface {
	// ListNotes returns every note. The result is never nil.
	ListNotes(ctx context.Context) ([]models.Note, error)
	// GetNote returns a single note or ErrNoteNotFound.
	GetNote(ctx context.Context, id string) (models.Note, error)
	// CreateNote persists a new note with a server-assigned id.
	CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error)
	// UpdateNote replaces title and content of the note with the given id.
	UpdateNote(ctx context.Context, id string, input models.NoteInput) (models.Note, error)
	// DeleteNote removes the note with the given id.
	DeleteNote(ctx context.Context, id string) error
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// NotesServiceWrapper defines middleware composition for NotesService.
// Implementations wrap an existing NotesService to add behavior such as
// logging.
type NotesServiceWrapper interface {
	Wrap(NotesService) NotesService // returns a decorated NotesService applying additional behavior
}
