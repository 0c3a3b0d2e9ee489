package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/models"
)

// NotesLoggingService decorates a [NotesService] with one log entry per
// call, written through the request-scoped logger.
type NotesLoggingService struct {
	inner NotesService
}

func NewNotesLoggingService() NotesServiceWrapper {
	return &NotesLoggingService{}
}

func (l *NotesLoggingService) Wrap(inner NotesService) NotesService {
	l.inner = inner
	return l
}

func (l *NotesLoggingService) ListNotes(ctx context.Context) ([]models.Note, error) {
	start := time.Now()
	notes, err := l.inner.ListNotes(ctx)
	l.log(ctx, "ListNotes", "", start, err).Int("count", len(notes)).Send()
	return notes, err
}

func (l *NotesLoggingService) GetNote(ctx context.Context, id string) (models.Note, error) {
	start := time.Now()
	note, err := l.inner.GetNote(ctx, id)
	l.log(ctx, "GetNote", id, start, err).Send()
	return note, err
}

func (l *NotesLoggingService) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	start := time.Now()
	note, err := l.inner.CreateNote(ctx, input)
	l.log(ctx, "CreateNote", note.ID, start, err).Send()
	return note, err
}

func (l *NotesLoggingService) UpdateNote(ctx context.Context, id string, input models.NoteInput) (models.Note, error) {
	start := time.Now()
	note, err := l.inner.UpdateNote(ctx, id, input)
	l.log(ctx, "UpdateNote", id, start, err).Send()
	return note, err
}

func (l *NotesLoggingService) DeleteNote(ctx context.Context, id string) error {
	start := time.Now()
	err := l.inner.DeleteNote(ctx, id)
	l.log(ctx, "DeleteNote", id, start, err).Send()
	return err
}

// log starts an entry at a level matching err: a missing note is an
// ordinary outcome, any other failure is an error.
func (l *NotesLoggingService) log(ctx context.Context, op, id string, start time.Time, err error) *zerolog.Event {
	log := logger.FromContext(ctx)

	var event *zerolog.Event
	switch {
	case err == nil:
		event = log.Debug()
	case errors.Is(err, ErrNoteNotFound):
		event = log.Info().Err(err)
	default:
		event = log.Err(err)
	}

	event = event.Str("func", "NotesService."+op).Dur("duration", time.Since(start))
	if id != "" {
		event = event.Str("id", id)
	}

	return event
}
