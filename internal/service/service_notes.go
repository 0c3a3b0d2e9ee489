// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/internal/store"
	"github.com/MKhiriev/notes-keeper/internal/validators"
	"github.com/MKhiriev/notes-keeper/models"
)

type notesService struct {
	noteStore store.NoteStore
	validator validators.Validator

	logger *logger.Logger
}

// NewNotesService returns a [NotesService] that passes every call straight
// to noteStore and maps its errors. Ids that can not name a note are
// reported as [ErrNoteNotFound] without a store round trip.
func NewNotesService(noteStore store.NoteStore, logger *logger.Logger) NotesService {
	return &notesService{
		noteStore: noteStore,
		validator: validators.NewNoteValidator(),
		logger:    logger,
	}
}

func (s *notesService) ListNotes(ctx context.Context) ([]models.Note, error) {
	notes, err := s.noteStore.List(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}

	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}

func (s *notesService) GetNote(ctx context.Context, id string) (models.Note, error) {
	if err := s.checkID(ctx, id); err != nil {
		return models.Note{}, err
	}

	note, err := s.noteStore.Get(ctx, id)
	if err != nil {
		return models.Note{}, mapStoreError(err)
	}

	return note, nil
}

func (s *notesService) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	note, err := s.noteStore.Create(ctx, input)
	if err != nil {
		return models.Note{}, mapStoreError(err)
	}

	return note, nil
}

func (s *notesService) UpdateNote(ctx context.Context, id string, input models.NoteInput) (models.Note, error) {
	if err := s.checkID(ctx, id); err != nil {
		return models.Note{}, err
	}

	note, err := s.noteStore.Update(ctx, id, input)
	if err != nil {
		return models.Note{}, mapStoreError(err)
	}

	return note, nil
}

func (s *notesService) DeleteNote(ctx context.Context, id string) error {
	if err := s.checkID(ctx, id); err != nil {
		return err
	}

	return mapStoreError(s.noteStore.Delete(ctx, id))
}

func (s *notesService) checkID(ctx context.Context, id string) error {
	if err := s.validator.Validate(ctx, id, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrNoteNotFound, err)
	}
	return nil
}
