package adapter

import "errors"

var (
	// ErrNetwork means the request never got an answer: the server is
	// down, the connection broke or the request timed out.
	ErrNetwork = errors.New("network failure")

	ErrNotFound            = errors.New("note not found")
	ErrBadRequest          = errors.New("bad request")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedResponse  = errors.New("unexpected server response")

	ErrInvalidAddress = errors.New("invalid server address")
)
