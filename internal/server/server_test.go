package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/MKhiriev/notes-keeper/internal/config"
	"github.com/MKhiriev/notes-keeper/internal/handler"
	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/internal/service"
	"github.com/MKhiriev/notes-keeper/internal/store"
	"github.com/MKhiriev/notes-keeper/internal/transport/notesrpc"
	"github.com/MKhiriev/notes-keeper/internal/utils"
	"github.com/MKhiriev/notes-keeper/models"
)

func newTestHandlers(t *testing.T, cfg config.StructuredConfig) *handler.Handlers {
	t.Helper()

	noteStore := store.NewMemoryNoteStore(utils.NewUUIDGenerator())
	appInfo, err := service.NewAppInfoService(config.App{Version: "test"}, logger.Nop())
	require.NoError(t, err)

	services := &service.Services{
		NotesService:   service.NewNotesService(noteStore, logger.Nop()),
		AppInfoService: appInfo,
	}

	handlers, err := handler.NewHandlers(services, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer_NoAddresses(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: busy.Addr().String()}}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg.Server, logger.Nop())

	assert.Nil(t, srv)
	assert.Error(t, err)
}

func TestRun_ServesUntilContextDone(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{
		HTTPAddress: "127.0.0.1:0",
		GRPCAddress: "127.0.0.1:0",
	}}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	httpAddr := s.httpServer.listener.Addr().String()
	grpcAddr := s.gRPCServer.gRPCNetListener.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	resp, err := http.Get("http://" + httpAddr + "/api/version/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "test", string(body))

	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	created, err := notesrpc.NewNotesClient(conn).Create(ctx, &notesrpc.CreateRequest{Note: models.NoteInput{Title: "via grpc"}})
	require.NoError(t, err)
	assert.Equal(t, "via grpc", created.Note.Title)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestRun_NothingToRun(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.Run(context.Background()), errNoServersToRun)
}

func TestShutdown_Idempotent(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0"}}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		srv.Shutdown()
		srv.Shutdown()
	})
}
