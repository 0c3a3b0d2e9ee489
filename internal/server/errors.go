package server

import "errors"

var (
	// errNoServersAreCreated: neither transport has a handler.
	errNoServersAreCreated = errors.New("server: neither HTTP nor gRPC handler is configured")
	errNoServersToRun      = errors.New("server: nothing to run")
)
