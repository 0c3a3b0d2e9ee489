// Package notesrpc defines the notes.Notes gRPC service shared by the server
// handler and the client adapter.
//
// Messages are plain Go structs carried by a JSON codec registered under the
// "json" content subtype, so no generated protobuf code is involved. Clients
// must call with [grpc.CallContentSubtype]([CodecName]); [NotesClient] does
// that on every call.
package notesrpc
