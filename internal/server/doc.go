// Package server runs the notes API over HTTP and gRPC.
//
// Either transport may be disabled by leaving its address empty. Both stop
// together on SIGINT or SIGTERM, after in-flight requests finish.
package server
