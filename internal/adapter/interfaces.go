// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the notes server.
//
// [ServerAdapter] decouples the client state controller from the protocol.
// The package ships a REST implementation built on resty and a gRPC
// implementation built on the notes.Notes service; [NewServerAdapter] picks
// one from the client configuration.
//
// Transport failures are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] regardless of the protocol (e.g. [ErrNotFound]
// for a 404 or codes.NotFound, [ErrNetwork] when the server is unreachable).
package adapter

import (
	"context"

	"github.com/MKhiriev/notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the notes API. Each method is one
// request; nothing is retried.
type ServerAdapter interface {
	// ListNotes fetches the full note collection in server order.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// GetNote fetches one note. A missing id yields [ErrNotFound].
	GetNote(ctx context.Context, id string) (models.Note, error)

	// CreateNote sends a new note and returns it with the server-assigned id.
	CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error)

	// UpdateNote replaces title and content of the note with the given id.
	UpdateNote(ctx context.Context, id string, input models.NoteInput) (models.Note, error)

	// DeleteNote removes the note with the given id.
	DeleteNote(ctx context.Context, id string) error

	// Close releases the underlying connection.
	Close() error
}
