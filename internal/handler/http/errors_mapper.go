package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/notes-keeper/internal/app"
	"github.com/MKhiriev/notes-keeper/internal/service"
	"github.com/MKhiriev/notes-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrNoteNotFound:     http.StatusNotFound,
	service.ErrStoreUnavailable: http.StatusInternalServerError,
}

var statusMessageMap = map[int]string{
	http.StatusNotFound:            app.MsgNoteNotFound,
	http.StatusInternalServerError: app.MsgStoreUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the status mapped from err and a short
// plain-text message. Details of err stay in the log.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	msg, ok := statusMessageMap[status]
	if !ok {
		msg = app.MsgInternalServerError
	}

	utils.WriteText(w, msg, status)
}
