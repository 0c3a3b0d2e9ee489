// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is a single persisted note.
//
// ID is assigned by the store on creation and never changes afterwards.
// Title and Content may be empty.
type Note struct {
	// ID is the store-generated identifier of the note. MongoDB stores
	// use the hex form of an ObjectID, SQL and in-memory stores use UUIDv7.
	ID string `json:"id"`

	// Title is the short headline shown on the note card.
	Title string `json:"title"`

	// Content is the free-form body of the note.
	Content string `json:"content"`
}

// NoteInput is the payload accepted by create and update operations.
// Keys missing from a decoded request leave the corresponding field empty.
type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Input returns the writable part of the note.
func (n Note) Input() NoteInput {
	return NoteInput{Title: n.Title, Content: n.Content}
}

// WithID builds a Note from the input and the given identifier.
func (in NoteInput) WithID(id string) Note {
	return Note{ID: id, Title: in.Title, Content: in.Content}
}
