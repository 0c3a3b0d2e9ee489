// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/notes-keeper/internal/adapter"
	"github.com/MKhiriev/notes-keeper/internal/app"
)

// errorMessage turns an adapter error into the line shown under the grid.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrNetwork):
		return app.MsgNetworkFailure
	case errors.Is(err, adapter.ErrNotFound):
		return app.MsgNoteNotFound
	case errors.Is(err, adapter.ErrInternalServerError):
		return app.MsgStoreUnavailable
	case errors.Is(err, adapter.ErrTooManyRequests):
		return app.MsgTooManyRequests
	case errors.Is(err, adapter.ErrUnexpectedResponse):
		return app.MsgUnexpectedResponse
	}
	return err.Error()
}
