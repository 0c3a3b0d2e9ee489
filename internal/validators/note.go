package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/notes-keeper/models"
)

const (
	// FieldID targets the identifier of a note.
	FieldID = "id"

	// MaxNoteIDLength bounds the byte length of an accepted note id. Store
	// generated ids (UUIDs and ObjectID hex strings) are far shorter.
	MaxNoteIDLength = 128
)

// NoteValidator checks note identifiers. It accepts a bare id string, a
// models.Note or a *models.Note.
type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateFields(value, fields...)
	case models.Note:
		return v.validateFields(value.ID, fields...)
	case *models.Note:
		if value == nil {
			return fmt.Errorf("%w: nil note", ErrUnsupportedType)
		}
		return v.validateFields(value.ID, fields...)
	}

	return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
}

func (v *NoteValidator) validateFields(id string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, field := range fields {
		switch field {
		case FieldID:
			if err := validateNoteID(id); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validateNoteID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyNoteID
	}
	if len(id) > MaxNoteIDLength || !utf8.ValidString(id) {
		return ErrInvalidNoteID
	}
	if strings.IndexFunc(id, unicode.IsControl) >= 0 {
		return ErrInvalidNoteID
	}
	return nil
}
