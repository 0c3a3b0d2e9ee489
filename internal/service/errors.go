package service

import "errors"

var (
	// ErrNoteNotFound is returned when the requested note does not exist.
	ErrNoteNotFound = errors.New("note not found")
	// ErrStoreUnavailable is returned when the note store failed the
	// operation. The request may be repeated by the caller.
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
