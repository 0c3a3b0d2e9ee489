package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/notes-keeper/internal/config"
	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/internal/mock"
	"github.com/MKhiriev/notes-keeper/internal/service"
	"github.com/MKhiriev/notes-keeper/models"
)

// newTestHandler builds a Handler whose services are gomock mocks.
func newTestHandler(t *testing.T, cfg config.StructuredConfig) (*Handler, *mock.MockNotesService, *mock.MockAppInfoService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	notes := mock.NewMockNotesService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	h := NewHandler(&service.Services{NotesService: notes, AppInfoService: appInfo}, cfg, logger.Nop())
	return h, notes, appInfo
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func serveRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// ── NewHandler ──

func TestNewHandler(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.StructuredConfig
		wantHasher  bool
		wantLimiter bool
		wantBurst   int
	}{
		{
			name: "plain configuration",
		},
		{
			name:       "hash key enables integrity check",
			cfg:        config.StructuredConfig{App: config.App{HashKey: "secret"}},
			wantHasher: true,
		},
		{
			name:        "rate limit with explicit burst",
			cfg:         config.StructuredConfig{Server: config.Server{RateLimit: 5, RateBurst: 20}},
			wantLimiter: true,
			wantBurst:   20,
		},
		{
			name:        "rate limit without burst derives one",
			cfg:         config.StructuredConfig{Server: config.Server{RateLimit: 2.5}},
			wantLimiter: true,
			wantBurst:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &service.Services{}
			log := logger.Nop()

			h := NewHandler(svc, tt.cfg, log)

			require.NotNil(t, h)
			assert.Same(t, svc, h.services)
			assert.Same(t, log, h.logger)
			assert.Equal(t, tt.wantHasher, h.hasher != nil)
			require.Equal(t, tt.wantLimiter, h.limiter != nil)
			if tt.wantLimiter {
				assert.Equal(t, tt.wantBurst, h.limiter.Burst())
			}
		})
	}
}

func TestInit_RequestTimeoutSetsDeadline(t *testing.T) {
	h, notes, _ := newTestHandler(t, config.StructuredConfig{Server: config.Server{RequestTimeout: time.Minute}})

	var hasDeadline bool
	notes.EXPECT().ListNotes(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Note, error) {
		_, hasDeadline = ctx.Deadline()
		return []models.Note{}, nil
	})

	rec := serve(h.Init(), http.MethodGet, "/api/notes", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hasDeadline)
}
