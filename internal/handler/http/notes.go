package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/notes-keeper/internal/app"
	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/internal/utils"
	"github.com/MKhiriev/notes-keeper/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NotesService.ListNotes(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.services.NotesService.GetNote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeNoteInput(w, r, "*Handler.createNote")
	if !ok {
		return
	}

	note, err := h.services.NotesService.CreateNote(r.Context(), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeNoteInput(w, r, "*Handler.updateNote")
	if !ok {
		return
	}

	note, err := h.services.NotesService.UpdateNote(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.services.NotesService.DeleteNote(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeNoteInput reads {title, content} from the body. Missing fields
// decode as empty strings. On failure it has already answered 400.
func decodeNoteInput(w http.ResponseWriter, r *http.Request, fn string) (models.NoteInput, bool) {
	var input models.NoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return models.NoteInput{}, false
	}

	return input, true
}
