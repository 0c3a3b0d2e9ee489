package grpc

import (
	"google.golang.org/grpc"

	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/internal/service"
	"github.com/MKhiriev/notes-keeper/internal/transport/notesrpc"
)

// Handler is the root gRPC transport handler.
//
// It implements [notesrpc.NotesServer] on top of the service layer. A
// handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is the parent of every request-scoped logger.
	logger *logger.Logger
}

var _ notesrpc.NotesServer = (*Handler)(nil)

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// ServerOptions returns the interceptor chain every notes gRPC server runs.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			h.recoverInterceptor,
			h.traceIDInterceptor,
			h.loggingInterceptor,
		),
	}
}

// Register attaches the notes service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	notesrpc.RegisterNotesServer(s, h)
}
