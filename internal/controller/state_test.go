package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/MKhiriev/notes-keeper/models"
)

var errOffline = errors.New("offline")

func TestSubmitLabel(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{name: "empty state creates", state: State{}, want: "Add Note"},
		{name: "draft without binding creates", state: State{Form: Form{Title: "t"}}, want: "Add Note"},
		{name: "bound form updates", state: State{EditingID: "n1"}, want: "Update Note"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubmitLabel(tt.state))
		})
	}
}

func TestBeginEdit(t *testing.T) {
	s := State{Form: Form{Title: "draft"}}

	got := BeginEdit(s, models.Note{ID: "n1", Title: "Groceries", Content: "Milk"})

	assert.Equal(t, Form{Title: "Groceries", Content: "Milk"}, got.Form)
	assert.Equal(t, "n1", got.EditingID)
	assert.Equal(t, "Update Note", SubmitLabel(got))
	assert.Equal(t, Form{Title: "draft"}, s.Form, "input state must not change")
}

func TestCancelEdit(t *testing.T) {
	s := State{Form: Form{Title: "t", Content: "c"}, EditingID: "n1"}

	got := CancelEdit(s)

	assert.Equal(t, Form{}, got.Form)
	assert.Empty(t, got.EditingID)
}

func TestSubmitted(t *testing.T) {
	notes := []models.Note{{ID: "n1"}}
	s := State{Notes: notes, Form: Form{Title: "t"}, EditingID: "n1", Err: errOffline}

	got := Submitted(s)

	assert.Equal(t, Form{}, got.Form)
	assert.Empty(t, got.EditingID)
	assert.NoError(t, got.Err)
	assert.Equal(t, notes, got.Notes)
}

func TestFailed_KeepsEverythingElse(t *testing.T) {
	s := State{
		Notes:      []models.Note{{ID: "n1", Title: "a"}},
		Form:       Form{Title: "draft", Content: "body"},
		EditingID:  "n1",
		RefreshSeq: 4,
	}

	got := Failed(s, errOffline)

	assert.ErrorIs(t, got.Err, errOffline)
	got.Err = nil
	assert.Equal(t, s, got)
}

func TestRemoved(t *testing.T) {
	editing := State{Form: Form{Title: "t"}, EditingID: "n1"}

	assert.Equal(t, State{}, Removed(editing, "n1"))
	assert.Equal(t, editing, Removed(editing, "n2"))
}

func TestApplyRefresh(t *testing.T) {
	first := []models.Note{{ID: "1"}}
	second := []models.Note{{ID: "1"}, {ID: "2"}}

	s := ApplyRefresh(State{Err: errOffline}, 1, first)
	assert.Equal(t, first, s.Notes)
	assert.Equal(t, uint64(1), s.RefreshSeq)
	assert.NoError(t, s.Err)

	s = ApplyRefresh(s, 3, second)
	assert.Equal(t, second, s.Notes)

	stale := ApplyRefresh(s, 2, first)
	assert.Equal(t, s, stale, "superseded refresh must be dropped")

	assert.Equal(t, []models.Note{}, ApplyRefresh(State{}, 1, nil).Notes)
}

func TestApplyRefresh_CopiesNotes(t *testing.T) {
	notes := []models.Note{{ID: "1", Title: "a"}}

	s := ApplyRefresh(State{}, 1, notes)
	notes[0].Title = "changed"

	assert.Equal(t, "a", s.Notes[0].Title)
}

// Whatever order responses arrive in, the applied list is the one of the
// newest refresh that has arrived so far.
func TestApplyRefresh_NewestWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "refreshes")
		order := rapid.Permutation(seqs(n)).Draw(t, "arrival")

		s := State{}
		var newest uint64
		for _, seq := range order {
			s = ApplyRefresh(s, seq, []models.Note{{ID: idFor(seq)}})
			newest = max(newest, seq)

			if s.RefreshSeq != newest {
				t.Fatalf("applied seq %d, want %d", s.RefreshSeq, newest)
			}
			if s.Notes[0].ID != idFor(newest) {
				t.Fatalf("notes of seq %s shown, want %s", s.Notes[0].ID, idFor(newest))
			}
		}
	})
}

func TestBeginEditThenCancel_RestoresCreateMode(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		note := models.Note{
			ID:      rapid.StringMatching(`[a-z0-9]{1,8}`).Draw(t, "id"),
			Title:   rapid.String().Draw(t, "title"),
			Content: rapid.String().Draw(t, "content"),
		}

		s := BeginEdit(State{}, note)
		if SubmitLabel(s) != LabelUpdate || s.Form.Input() != note.Input() {
			t.Fatalf("form not loaded from note: %+v", s)
		}

		s = CancelEdit(s)
		if SubmitLabel(s) != LabelAdd || s.Form != (Form{}) {
			t.Fatalf("cancel left state bound: %+v", s)
		}
	})
}

func seqs(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = uint64(i + 1)
	}
	return out
}

func idFor(seq uint64) string {
	return string(rune('a' + seq))
}
