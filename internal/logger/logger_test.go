package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, data []byte) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	return entry
}

// ── New ──

func TestNew_EntryFields(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, "notes-server").Info().Msg("listening")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "notes-server", entry[roleField])
	assert.Equal(t, "listening", entry["message"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Contains(t, entry[callerField], "TestNew_EntryFields")
}

func TestNew_SetsGlobals(t *testing.T) {
	New(&bytes.Buffer{}, "globals")

	assert.Equal(t, callerField, zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// ── NewClientLogger ──

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l := NewClientLogger("tui", path)
	l.Info().Msg("first")
	l.Info().Msg("second")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 2)
	entry := decodeEntry(t, lines[1])
	assert.Equal(t, "tui", entry[roleField])
	assert.Equal(t, "second", entry["message"])
}

func TestNewClientLogger_UnwritablePathFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "client.log")

	l := NewClientLogger("tui", path)

	require.NotNil(t, l)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

// ── Nop ──

func TestNop_Disabled(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, Nop().GetLevel())
}

// ── ForTrace ──

func TestForTrace_TagsEntriesAndKeepsParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "notes-server")

	parent.ForTrace("trace-7").Info().Msg("child")
	parent.Info().Msg("parent")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	child := decodeEntry(t, lines[0])
	assert.Equal(t, "trace-7", child[traceIDField])
	assert.Equal(t, "notes-server", child[roleField])

	assert.NotContains(t, decodeEntry(t, lines[1]), traceIDField)
}

// ── FromContext / FromRequest ──

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := New(&buf, "ctx").ForTrace("abc").WithContext(context.Background())

	tests := []struct {
		name string
		get  func() *Logger
	}{
		{name: "context", get: func() *Logger { return FromContext(ctx) }},
		{name: "request", get: func() *Logger {
			return FromRequest(httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			tt.get().Info().Msg(tt.name)

			assert.Equal(t, "abc", decodeEntry(t, buf.Bytes())[traceIDField])
		})
	}
}

func TestFromContext_WithoutLoggerIsNotNil(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}
