package grpc

import (
	"context"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/internal/mock"
	"github.com/MKhiriev/notes-keeper/internal/service"
	"github.com/MKhiriev/notes-keeper/internal/store"
	"github.com/MKhiriev/notes-keeper/internal/utils"
	"github.com/MKhiriev/notes-keeper/internal/transport/notesrpc"
	"github.com/MKhiriev/notes-keeper/models"
)

const bufSize = 1024 * 1024

// startServer serves services over an in-memory listener and returns a
// client connected to it.
func startServer(t *testing.T, services *service.Services) *notesrpc.NotesClient {
	t.Helper()

	h := NewHandler(services, logger.Nop())
	lis := bufconn.Listen(bufSize)
	srv := grpc.NewServer(h.ServerOptions()...)
	h.Register(srv)

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return notesrpc.NewNotesClient(conn)
}

func startMockServer(t *testing.T) (*notesrpc.NotesClient, *mock.MockNotesService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNotesService(ctrl)
	return startServer(t, &service.Services{NotesService: notes}), notes
}

// ── NewHandler ──

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Len(t, h.ServerOptions(), 1)
}

// ── error mapping ──

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
	}{
		{"missing note", fmt.Errorf("%w: %w", service.ErrNoteNotFound, store.ErrNoteNotFound), codes.NotFound},
		{"store down", fmt.Errorf("%w: boom", service.ErrStoreUnavailable), codes.Unavailable},
		{"anything else", assert.AnError, codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, status.Code(statusFromError(tt.err)))
		})
	}
}

// ── unary methods ──

func TestList(t *testing.T) {
	client, notes := startMockServer(t)
	want := []models.Note{{ID: "1", Title: "a", Content: "b"}}
	notes.EXPECT().ListNotes(gomock.Any()).Return(want, nil)

	resp, err := client.List(context.Background(), &notesrpc.ListRequest{})

	require.NoError(t, err)
	assert.Equal(t, want, resp.Notes)
}

func TestCreate(t *testing.T) {
	client, notes := startMockServer(t)
	input := models.NoteInput{Title: "Groceries", Content: "Milk"}
	notes.EXPECT().CreateNote(gomock.Any(), input).Return(input.WithID("n1"), nil)

	resp, err := client.Create(context.Background(), &notesrpc.CreateRequest{Note: input})

	require.NoError(t, err)
	assert.Equal(t, models.Note{ID: "n1", Title: "Groceries", Content: "Milk"}, resp.Note)
}

func TestUpdate_NotFound(t *testing.T) {
	client, notes := startMockServer(t)
	notes.EXPECT().
		UpdateNote(gomock.Any(), "ghost", models.NoteInput{Title: "x"}).
		Return(models.Note{}, service.ErrNoteNotFound)

	_, err := client.Update(context.Background(), &notesrpc.UpdateRequest{ID: "ghost", Note: models.NoteInput{Title: "x"}})

	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestDelete_StoreUnavailable(t *testing.T) {
	client, notes := startMockServer(t)
	notes.EXPECT().DeleteNote(gomock.Any(), "n1").Return(service.ErrStoreUnavailable)

	_, err := client.Delete(context.Background(), &notesrpc.DeleteRequest{ID: "n1"})

	assert.Equal(t, codes.Unavailable, status.Code(err))
}

// ── interceptors ──

func TestTraceIDInterceptor(t *testing.T) {
	client, notes := startMockServer(t)

	var seen string
	notes.EXPECT().GetNote(gomock.Any(), "n1").DoAndReturn(func(ctx context.Context, id string) (models.Note, error) {
		seen, _ = utils.GetTraceIDFromContext(ctx)
		return models.Note{ID: id}, nil
	})

	ctx := metadata.AppendToOutgoingContext(context.Background(), TraceIDMetadataKey, "trace-7")
	var header metadata.MD
	_, err := client.Get(ctx, &notesrpc.GetRequest{ID: "n1"}, grpc.Header(&header))

	require.NoError(t, err)
	assert.Equal(t, "trace-7", seen)
	assert.Equal(t, []string{"trace-7"}, header.Get(TraceIDMetadataKey))
}

func TestRecoverInterceptor(t *testing.T) {
	client, notes := startMockServer(t)
	notes.EXPECT().ListNotes(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Note, error) {
		panic("boom")
	})

	_, err := client.List(context.Background(), &notesrpc.ListRequest{})

	assert.Equal(t, codes.Internal, status.Code(err))
}

// ── Groceries scenario over the memory store ──

func TestNotesRPC_GroceriesScenario(t *testing.T) {
	noteStore := store.NewMemoryNoteStore(utils.NewUUIDGenerator())
	client := startServer(t, &service.Services{
		NotesService: service.NewNotesService(noteStore, logger.Nop()),
	})
	ctx := context.Background()

	created, err := client.Create(ctx, &notesrpc.CreateRequest{Note: models.NoteInput{Title: "Groceries", Content: "Milk, eggs"}})
	require.NoError(t, err)
	require.NotEmpty(t, created.Note.ID)

	list, err := client.List(ctx, &notesrpc.ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, []models.Note{created.Note}, list.Notes)

	_, err = client.Update(ctx, &notesrpc.UpdateRequest{ID: created.Note.ID, Note: models.NoteInput{Title: "Groceries", Content: "Milk, eggs, bread"}})
	require.NoError(t, err)

	got, err := client.Get(ctx, &notesrpc.GetRequest{ID: created.Note.ID})
	require.NoError(t, err)
	assert.Equal(t, "Milk, eggs, bread", got.Note.Content)

	_, err = client.Delete(ctx, &notesrpc.DeleteRequest{ID: created.Note.ID})
	require.NoError(t, err)

	_, err = client.Delete(ctx, &notesrpc.DeleteRequest{ID: created.Note.ID})
	assert.Equal(t, codes.NotFound, status.Code(err))

	list, err = client.List(ctx, &notesrpc.ListRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Notes)
}
