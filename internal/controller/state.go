// Package controller holds the client-side state of the notes UI and the
// operations that change it.
//
// [State] is a plain value. The functions in this file are pure: they take a
// State and return the next one, which keeps every transition testable
// without a server. [Controller] runs the transitions against a
// [adapter.ServerAdapter] and serialises access to the current State.
package controller

import (
	"slices"

	"github.com/MKhiriev/notes-keeper/models"
)

const (
	LabelAdd    = "Add Note"
	LabelUpdate = "Update Note"
)

// Form is the draft shown in the note form.
type Form struct {
	Title   string
	Content string
}

func (f Form) Input() models.NoteInput {
	return models.NoteInput{Title: f.Title, Content: f.Content}
}

// State is everything the UI renders.
type State struct {
	// Notes is the last fetched collection, replaced wholesale on refresh.
	Notes []models.Note
	// Form is the current draft.
	Form Form
	// EditingID is the id of the note being edited, empty when the form
	// creates a new note.
	EditingID string
	// Err is the last failure, cleared by the next successful refresh or
	// submit.
	Err error
	// RefreshSeq is the token of the last applied refresh.
	RefreshSeq uint64
}

// Editing reports whether the form is bound to an existing note.
func (s State) Editing() bool {
	return s.EditingID != ""
}

// BeginEdit loads note into the form and binds the form to its id.
func BeginEdit(s State, note models.Note) State {
	s.Form = Form{Title: note.Title, Content: note.Content}
	s.EditingID = note.ID
	return s
}

func SetForm(s State, form Form) State {
	s.Form = form
	return s
}

// CancelEdit clears the draft and returns the form to create mode.
func CancelEdit(s State) State {
	s.Form = Form{}
	s.EditingID = ""
	return s
}

// ApplyRefresh replaces the note list with notes fetched under token seq.
// A token not newer than the last applied one belongs to a superseded
// refresh, and s is returned unchanged.
func ApplyRefresh(s State, seq uint64, notes []models.Note) State {
	if seq <= s.RefreshSeq {
		return s
	}

	s.Notes = slices.Clone(notes)
	if s.Notes == nil {
		s.Notes = []models.Note{}
	}
	s.RefreshSeq = seq
	s.Err = nil
	return s
}

// Submitted resets the form after a successful create or update.
func Submitted(s State) State {
	s = CancelEdit(s)
	s.Err = nil
	return s
}

// Failed records err and leaves notes, form and editing id untouched.
func Failed(s State, err error) State {
	s.Err = err
	return s
}

// Removed forgets the edit binding when the edited note was deleted.
func Removed(s State, id string) State {
	if s.EditingID == id {
		s = CancelEdit(s)
	}
	s.Err = nil
	return s
}

// SubmitLabel is the text of the submit action.
func SubmitLabel(s State) string {
	if s.Editing() {
		return LabelUpdate
	}
	return LabelAdd
}
