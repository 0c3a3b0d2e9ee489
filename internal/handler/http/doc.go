// Package http implements the REST transport of the notes server.
//
// It wires chi routes for the note collection under /api, request handlers
// that translate JSON bodies into service calls, and the middleware stack in
// front of them: panic recovery, CORS, request tracing, access logging,
// gzip compression, optional body integrity checks and optional rate
// limiting.
package http
