package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/notes-keeper/models"
)

// memoryNoteStore keeps notes in process memory. It backs the memory://
// database URL and the service level tests.
type memoryNoteStore struct {
	mu          sync.RWMutex
	notes       map[string]models.Note
	order       []string
	idGenerator IDGenerator
}

// NewMemoryNoteStore returns an empty in-memory [NoteStore].
func NewMemoryNoteStore(idGenerator IDGenerator) NoteStore {
	return &memoryNoteStore{
		notes:       make(map[string]models.Note),
		idGenerator: idGenerator,
	}
}

func (s *memoryNoteStore) List(ctx context.Context) ([]models.Note, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]models.Note, 0, len(s.order))
	for _, id := range s.order {
		notes = append(notes, s.notes[id])
	}

	return notes, nil
}

func (s *memoryNoteStore) Get(ctx context.Context, id string) (models.Note, error) {
	if err := alive(ctx); err != nil {
		return models.Note{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	note, ok := s.notes[id]
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}

	return note, nil
}

func (s *memoryNoteStore) Create(ctx context.Context, input models.NoteInput) (models.Note, error) {
	if err := alive(ctx); err != nil {
		return models.Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note := input.WithID(s.idGenerator.Generate())
	s.notes[note.ID] = note
	s.order = append(s.order, note.ID)

	return note, nil
}

func (s *memoryNoteStore) Update(ctx context.Context, id string, input models.NoteInput) (models.Note, error) {
	if err := alive(ctx); err != nil {
		return models.Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return models.Note{}, ErrNoteNotFound
	}

	note := input.WithID(id)
	s.notes[id] = note

	return note, nil
}

func (s *memoryNoteStore) Delete(ctx context.Context, id string) error {
	if err := alive(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return ErrNoteNotFound
	}

	delete(s.notes, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

func (s *memoryNoteStore) Ping(ctx context.Context) error {
	return alive(ctx)
}

func (s *memoryNoteStore) Close(_ context.Context) error {
	return nil
}

// alive reports a cancelled or expired request context as an unavailable
// store, the same way a database driver would.
func alive(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}
