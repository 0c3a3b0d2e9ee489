package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/notes-keeper/models"
)

const (
	notesTable = "notes"

	columnID      = "id"
	columnTitle   = "title"
	columnContent = "content"
)

// noteQueries builds the statements of the note repository for a single
// placeholder style.
type noteQueries struct {
	builder sq.StatementBuilderType
}

func newNoteQueries(placeholder sq.PlaceholderFormat) noteQueries {
	return noteQueries{builder: sq.StatementBuilder.PlaceholderFormat(placeholder)}
}

// listNotes selects every note ordered by id. Ids are UUIDv7 so this is
// insertion order.
func (q noteQueries) listNotes() (string, []any, error) {
	return q.wrap(q.builder.
		Select(columnID, columnTitle, columnContent).
		From(notesTable).
		OrderBy(columnID).
		ToSql())
}

func (q noteQueries) getNote(id string) (string, []any, error) {
	return q.wrap(q.builder.
		Select(columnID, columnTitle, columnContent).
		From(notesTable).
		Where(sq.Eq{columnID: id}).
		ToSql())
}

func (q noteQueries) insertNote(note models.Note) (string, []any, error) {
	return q.wrap(q.builder.
		Insert(notesTable).
		Columns(columnID, columnTitle, columnContent).
		Values(note.ID, note.Title, note.Content).
		ToSql())
}

func (q noteQueries) updateNote(id string, input models.NoteInput) (string, []any, error) {
	return q.wrap(q.builder.
		Update(notesTable).
		Set(columnTitle, input.Title).
		Set(columnContent, input.Content).
		Where(sq.Eq{columnID: id}).
		ToSql())
}

func (q noteQueries) deleteNote(id string) (string, []any, error) {
	return q.wrap(q.builder.
		Delete(notesTable).
		Where(sq.Eq{columnID: id}).
		ToSql())
}

func (q noteQueries) wrap(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
