// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/models"
)

// noteRepository is the database/sql implementation of [NoteStore] shared by
// the PostgreSQL and SQLite backends. Only the placeholder style and the
// error classifier differ between them.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that all database interactions carry the request trace id.
type noteRepository struct {
	*DB
	queries     noteQueries
	idGenerator IDGenerator
	logger      *logger.Logger
}

// NewNoteRepository constructs a [NoteStore] backed by the provided database
// connection. New note ids are taken from idGenerator.
func NewNoteRepository(db *DB, idGenerator IDGenerator, logger *logger.Logger) NoteStore {
	return &noteRepository{
		DB:          db,
		queries:     newNoteQueries(db.placeholder()),
		idGenerator: idGenerator,
		logger:      logger,
	}
}

func (r *noteRepository) List(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.listNotes()
	if err != nil {
		log.Err(err).Str("func", "noteRepository.List").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logFailure(log, err, "noteRepository.List", "failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)
	for rows.Next() {
		var note models.Note
		if scanErr := rows.Scan(&note.ID, &note.Title, &note.Content); scanErr != nil {
			log.Err(scanErr).Str("func", "noteRepository.List").Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "noteRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRows, rowsErr)
	}

	return notes, nil
}

func (r *noteRepository) Get(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.getNote(id)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Get").Msg("failed to create query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logFailure(log, err, "noteRepository.Get", "failed to execute query for getting note")
		return models.Note{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if rowsErr := rows.Err(); rowsErr != nil {
			log.Err(rowsErr).Str("func", "noteRepository.Get").Msg("error occurred during rows iteration")
			return models.Note{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRows, rowsErr)
		}
		return models.Note{}, ErrNoteNotFound
	}

	var note models.Note
	if scanErr := rows.Scan(&note.ID, &note.Title, &note.Content); scanErr != nil {
		log.Err(scanErr).Str("func", "noteRepository.Get").Str("id", id).Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, scanErr)
	}

	return note, nil
}

func (r *noteRepository) Create(ctx context.Context, input models.NoteInput) (models.Note, error) {
	log := logger.FromContext(ctx)

	note := input.WithID(r.idGenerator.Generate())

	query, args, err := r.queries.insertNote(note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Create").Msg("failed to create query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logFailure(log, err, "noteRepository.Create", "failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	return note, nil
}

func (r *noteRepository) Update(ctx context.Context, id string, input models.NoteInput) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.updateNote(id, input)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Update").Msg("failed to create query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err = r.execOne(ctx, query, args); err != nil {
		if !errors.Is(err, ErrNoteNotFound) {
			r.logFailure(log, err, "noteRepository.Update", "failed to update note")
		}
		return models.Note{}, err
	}

	return input.WithID(id), nil
}

func (r *noteRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.deleteNote(id)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.Delete").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err = r.execOne(ctx, query, args); err != nil {
		if !errors.Is(err, ErrNoteNotFound) {
			r.logFailure(log, err, "noteRepository.Delete", "failed to delete note")
		}
		return err
	}

	return nil
}

func (r *noteRepository) Ping(ctx context.Context) error {
	if err := r.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (r *noteRepository) Close(_ context.Context) error {
	return r.DB.Close()
}

// execOne executes a statement that must touch exactly one note. Zero
// affected rows means the id is unknown.
func (r *noteRepository) execOne(ctx context.Context, query string, args []any) error {
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func (r *noteRepository) logFailure(log *logger.Logger, err error, fn, msg string) {
	log.Err(err).
		Str("func", fn).
		Str("dialect", r.dialect).
		Str("pg_code", postgresError(err)).
		Bool("retryable", r.retryable(err)).
		Msg(msg)
}
