// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// notes-keeper server handlers, client adapters and the terminal UI.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded as a
	// note payload.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgNoteNotFound is returned when the requested note id does not exist.
	MsgNoteNotFound = "note not found"

	// MsgStoreUnavailable is returned when the note store cannot be reached
	// or rejected the operation.
	MsgStoreUnavailable = "store unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests"

	// MsgHashMismatch is returned when the HashSHA256 header does not match
	// the request body.
	MsgHashMismatch = "request hash mismatch"

	// MsgNetworkFailure is shown by the client when the server could not be
	// reached at all.
	MsgNetworkFailure = "server is unreachable"

	// MsgUnexpectedResponse is shown by the client when the server answered
	// with a status it does not understand.
	MsgUnexpectedResponse = "unexpected server response"
)
