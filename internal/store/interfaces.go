// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/note_store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/notes-keeper/models"
)

// NoteStore is the persistent collection of notes.
//
// Every method is an independent unit of work. Lookups of an id that does not
// exist, including ids that are malformed for the backend, return
// [ErrNoteNotFound]. Connectivity and driver failures are wrapped with
// [ErrStoreUnavailable].
type NoteStore interface {
	// List returns every note in insertion order. An empty store yields an
	// empty, non-nil slice.
	List(ctx context.Context) ([]models.Note, error)
	// Get returns the note with the given id.
	Get(ctx context.Context, id string) (models.Note, error)
	// Create persists a new note and returns it with its generated id.
	Create(ctx context.Context, input models.NoteInput) (models.Note, error)
	// Update replaces title and content of an existing note.
	Update(ctx context.Context, id string, input models.NoteInput) (models.Note, error)
	// Delete removes the note with the given id.
	Delete(ctx context.Context, id string) error
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases the backend connection.
	Close(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation may succeed
// when attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// IDGenerator produces identifiers for new notes.
type IDGenerator interface {
	Generate() string
}
