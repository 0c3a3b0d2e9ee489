package grpc

import (
	"context"

	"github.com/MKhiriev/notes-keeper/internal/transport/notesrpc"
)

func (h *Handler) List(ctx context.Context, _ *notesrpc.ListRequest) (*notesrpc.ListResponse, error) {
	notes, err := h.services.NotesService.ListNotes(ctx)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &notesrpc.ListResponse{Notes: notes}, nil
}

func (h *Handler) Get(ctx context.Context, req *notesrpc.GetRequest) (*notesrpc.NoteResponse, error) {
	note, err := h.services.NotesService.GetNote(ctx, req.ID)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &notesrpc.NoteResponse{Note: note}, nil
}

func (h *Handler) Create(ctx context.Context, req *notesrpc.CreateRequest) (*notesrpc.NoteResponse, error) {
	note, err := h.services.NotesService.CreateNote(ctx, req.Note)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &notesrpc.NoteResponse{Note: note}, nil
}

func (h *Handler) Update(ctx context.Context, req *notesrpc.UpdateRequest) (*notesrpc.NoteResponse, error) {
	note, err := h.services.NotesService.UpdateNote(ctx, req.ID, req.Note)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &notesrpc.NoteResponse{Note: note}, nil
}

func (h *Handler) Delete(ctx context.Context, req *notesrpc.DeleteRequest) (*notesrpc.DeleteResponse, error) {
	if err := h.services.NotesService.DeleteNote(ctx, req.ID); err != nil {
		return nil, statusFromError(err)
	}

	return &notesrpc.DeleteResponse{}, nil
}
