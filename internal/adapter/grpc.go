package adapter

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/notes-keeper/internal/config"
	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/internal/transport/notesrpc"
	"github.com/MKhiriev/notes-keeper/internal/utils"
	"github.com/MKhiriev/notes-keeper/models"
)

const traceIDMetadataKey = "x-trace-id"

type grpcServerAdapter struct {
	conn    *grpc.ClientConn
	client  *notesrpc.NotesClient
	timeout time.Duration

	logger *logger.Logger
}

// NewGRPCServerAdapter dials cfg.GRPCAddress lazily and returns the gRPC
// implementation of [ServerAdapter].
func NewGRPCServerAdapter(cfg config.ClientAdapter, logger *logger.Logger, opts ...grpc.DialOption) (ServerAdapter, error) {
	if cfg.GRPCAddress == "" {
		return nil, fmt.Errorf("%w: empty gRPC address", ErrInvalidAddress)
	}

	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(cfg.GRPCAddress, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &grpcServerAdapter{
		conn:    conn,
		client:  notesrpc.NewNotesClient(conn),
		timeout: cfg.RequestTimeout,
		logger:  logger,
	}, nil
}

func (g *grpcServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	resp, err := g.client.List(ctx, &notesrpc.ListRequest{})
	if err = g.check("ListNotes", err); err != nil {
		return nil, err
	}

	if resp.Notes == nil {
		return []models.Note{}, nil
	}
	return resp.Notes, nil
}

func (g *grpcServerAdapter) GetNote(ctx context.Context, id string) (models.Note, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	resp, err := g.client.Get(ctx, &notesrpc.GetRequest{ID: id})
	if err = g.check("GetNote", err); err != nil {
		return models.Note{}, err
	}

	return resp.Note, nil
}

func (g *grpcServerAdapter) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	resp, err := g.client.Create(ctx, &notesrpc.CreateRequest{Note: input})
	if err = g.check("CreateNote", err); err != nil {
		return models.Note{}, err
	}

	return resp.Note, nil
}

func (g *grpcServerAdapter) UpdateNote(ctx context.Context, id string, input models.NoteInput) (models.Note, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	resp, err := g.client.Update(ctx, &notesrpc.UpdateRequest{ID: id, Note: input})
	if err = g.check("UpdateNote", err); err != nil {
		return models.Note{}, err
	}

	return resp.Note, nil
}

func (g *grpcServerAdapter) DeleteNote(ctx context.Context, id string) error {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	_, err := g.client.Delete(ctx, &notesrpc.DeleteRequest{ID: id})
	return g.check("DeleteNote", err)
}

func (g *grpcServerAdapter) Close() error {
	return g.conn.Close()
}

// callContext applies the request timeout and forwards the trace id.
func (g *grpcServerAdapter) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		ctx = metadata.AppendToOutgoingContext(ctx, traceIDMetadataKey, traceID)
	}
	if g.timeout > 0 {
		return context.WithTimeout(ctx, g.timeout)
	}
	return context.WithCancel(ctx)
}

func (g *grpcServerAdapter) check(op string, err error) error {
	err = mapGRPCError(err)
	if err != nil {
		g.logger.Err(err).Str("func", "*grpcServerAdapter."+op).Msg("request to notes server failed")
	}
	return err
}
