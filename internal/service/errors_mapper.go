package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/notes-keeper/internal/store"
)

// mapStoreError translates store errors into the service error taxonomy.
// Anything that is not a missing note is reported as an unavailable store.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, store.ErrNoteNotFound) {
		return fmt.Errorf("%w: %w", ErrNoteNotFound, err)
	}

	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
