package notesrpc

import "github.com/MKhiriev/notes-keeper/models"

type ListRequest struct{}

type ListResponse struct {
	Notes []models.Note `json:"notes"`
}

type GetRequest struct {
	ID string `json:"id"`
}

type CreateRequest struct {
	Note models.NoteInput `json:"note"`
}

type UpdateRequest struct {
	ID   string           `json:"id"`
	Note models.NoteInput `json:"note"`
}

type DeleteRequest struct {
	ID string `json:"id"`
}

type DeleteResponse struct{}

// NoteResponse carries the note returned by Get, Create and Update.
type NoteResponse struct {
	Note models.Note `json:"note"`
}
