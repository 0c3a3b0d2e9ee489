package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/notes-keeper/internal/adapter"
	"github.com/MKhiriev/notes-keeper/internal/app"
	"github.com/MKhiriev/notes-keeper/models"
)

func TestColumnsFor(t *testing.T) {
	card := lipgloss.Width(cardStyle.Render(""))
	frame := appStyle.GetHorizontalFrameSize()

	tests := []struct {
		name  string
		width int
		want  int
	}{
		{name: "narrow terminal still shows one column", width: 10, want: 1},
		{name: "exactly one card", width: frame + card, want: 1},
		{name: "three cards", width: frame + 3*card, want: 3},
		{name: "almost four cards", width: frame + 4*card - 1, want: 3},
		{name: "unknown width uses default", width: 0, want: columnsFor(defaultWidth)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, columnsFor(tt.width))
		})
	}
}

func TestMoveSelection(t *testing.T) {
	tests := []struct {
		name                   string
		selected, delta, total int
		want                   int
	}{
		{name: "empty grid", selected: 3, delta: 1, total: 0, want: 0},
		{name: "step right", selected: 0, delta: 1, total: 3, want: 1},
		{name: "past the end", selected: 2, delta: 1, total: 3, want: 2},
		{name: "before the start", selected: 0, delta: -1, total: 3, want: 0},
		{name: "row down", selected: 1, delta: 2, total: 5, want: 3},
		{name: "row down past the end", selected: 3, delta: 2, total: 5, want: 3},
		{name: "clamp after shrink", selected: 4, delta: 0, total: 2, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, moveSelection(tt.selected, tt.delta, tt.total))
		})
	}
}

func TestRenderGrid_RowsOfColumns(t *testing.T) {
	notes := []models.Note{
		{ID: "1", Title: "first"},
		{ID: "2", Title: "second"},
		{ID: "3", Title: "third"},
	}

	out := renderGrid(notes, 0, 2, true)

	var firstRow string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "first") {
			firstRow = line
			break
		}
	}
	assert.Contains(t, firstRow, "second")
	assert.NotContains(t, firstRow, "third")
	assert.Contains(t, out, "third")
}

func TestRenderCard(t *testing.T) {
	long := strings.Repeat("x", cardWidth*2)
	lines := make([]string, 0, 10)
	for i := range 10 {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}

	tests := []struct {
		name        string
		note        models.Note
		contains    []string
		notContains []string
	}{
		{
			name:     "untitled",
			note:     models.Note{ID: "1", Content: "body"},
			contains: []string{"(untitled)", "body", "e edit  d delete"},
		},
		{
			name:        "long title is cut",
			note:        models.Note{ID: "1", Title: long},
			contains:    []string{"..."},
			notContains: []string{long},
		},
		{
			name:        "long content keeps the first lines",
			note:        models.Note{ID: "1", Title: "t", Content: strings.Join(lines, "\n")},
			contains:    []string{"line 0", "line 1"},
			notContains: []string{"line 9"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderCard(tt.note, false)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "заметк...", fitText("заметка номер один", 9))
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "network", err: fmt.Errorf("list notes: %w", adapter.ErrNetwork), want: app.MsgNetworkFailure},
		{name: "not found", err: adapter.ErrNotFound, want: app.MsgNoteNotFound},
		{name: "server error", err: adapter.ErrInternalServerError, want: app.MsgStoreUnavailable},
		{name: "rate limited", err: adapter.ErrTooManyRequests, want: app.MsgTooManyRequests},
		{name: "other", err: assert.AnError, want: assert.AnError.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.err))
		})
	}
}
