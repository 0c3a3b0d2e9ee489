// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/MKhiriev/notes-keeper/models"
)

// ── dispatch ──

func TestNoteValidator_Dispatch(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "id string", obj: "0190a3c4-7c1e-7d2a-9c55-0f6f0e6d1a2b"},
		{name: "note value", obj: models.Note{ID: "65f1c0ffee0000000000abcd"}},
		{name: "note pointer", obj: &models.Note{ID: "n1"}},
		{name: "nil note pointer", obj: (*models.Note)(nil), wantErr: ErrUnsupportedType},
		{name: "unsupported type", obj: 42, wantErr: ErrUnsupportedType},
		{name: "note input has no id", obj: models.NoteInput{}, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNoteValidator_UnknownField(t *testing.T) {
	err := NewNoteValidator().Validate(context.Background(), "n1", "title")
	require.ErrorIs(t, err, ErrUnknownField)
}

// ── id rules ──

func TestNoteValidator_ID(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "uuid", id: "0190a3c4-7c1e-7d2a-9c55-0f6f0e6d1a2b"},
		{name: "object id", id: "65f1c0ffee0000000000abcd"},
		{name: "arbitrary text", id: "not-an-existing-id"},
		{name: "empty", id: "", wantErr: ErrEmptyNoteID},
		{name: "blank", id: "  \t", wantErr: ErrEmptyNoteID},
		{name: "too long", id: strings.Repeat("a", MaxNoteIDLength+1), wantErr: ErrInvalidNoteID},
		{name: "longest accepted", id: strings.Repeat("a", MaxNoteIDLength)},
		{name: "control character", id: "n1\x00", wantErr: ErrInvalidNoteID},
		{name: "invalid utf8", id: "n\xff1", wantErr: ErrInvalidNoteID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.id, FieldID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNoteValidator_PrintableIDsAccepted(t *testing.T) {
	v := NewNoteValidator()
	rapid.Check(t, func(t *rapid.T) {
		id := rapid.StringMatching(`[0-9a-zA-Z-]{1,64}`).Draw(t, "id")
		require.NoError(t, v.Validate(context.Background(), id))
	})
}
