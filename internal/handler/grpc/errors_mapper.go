package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/notes-keeper/internal/app"
	"github.com/MKhiriev/notes-keeper/internal/service"
)

var errorCodeMap = map[error]codes.Code{
	service.ErrNoteNotFound:     codes.NotFound,
	service.ErrStoreUnavailable: codes.Unavailable,
}

var codeMessageMap = map[codes.Code]string{
	codes.NotFound:    app.MsgNoteNotFound,
	codes.Unavailable: app.MsgStoreUnavailable,
}

func statusFromError(err error) error {
	code := codes.Internal
	for target, c := range errorCodeMap {
		if errors.Is(err, target) {
			code = c
			break
		}
	}

	msg, ok := codeMessageMap[code]
	if !ok {
		msg = app.MsgInternalServerError
	}

	return status.Error(code, msg)
}
