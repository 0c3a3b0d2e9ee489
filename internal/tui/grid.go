package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/notes-keeper/models"
)

const defaultWidth = 80

// columnsFor returns how many cards fit next to each other in a terminal of
// the given width. It never returns less than one.
func columnsFor(width int) int {
	if width <= 0 {
		width = defaultWidth
	}
	usable := width - appStyle.GetHorizontalFrameSize()
	n := usable / lipgloss.Width(cardStyle.Render(""))
	return max(n, 1)
}

// moveSelection shifts selected by delta and keeps it inside [0, total).
// A move that would leave the grid keeps the current selection.
func moveSelection(selected, delta, total int) int {
	if total == 0 {
		return 0
	}
	next := selected + delta
	if next < 0 || next >= total {
		return min(max(selected, 0), total-1)
	}
	return next
}

func renderCard(note models.Note, selected bool) string {
	inner := cardWidth - cardStyle.GetHorizontalPadding()

	title := note.Title
	if strings.TrimSpace(title) == "" {
		title = "(untitled)"
	}

	body := lipgloss.NewStyle().Height(cardHeight - 2).Render(firstLines(note.Content, cardHeight-2, inner))
	content := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(fitText(title, inner)),
		body,
		cardActionsStyle.Render("e edit  d delete"),
	)

	if selected {
		return cardSelectedStyle.Render(content)
	}
	return cardStyle.Render(content)
}

// renderGrid lays the notes out row by row, columns cards per row.
// selected is highlighted only while the grid has focus.
func renderGrid(notes []models.Note, selected, columns int, focused bool) string {
	if len(notes) == 0 {
		return helpStyle.Render("No notes yet. Fill in the form and press ctrl+s.")
	}

	rows := make([]string, 0, len(notes)/columns+1)
	for start := 0; start < len(notes); start += columns {
		end := min(start+columns, len(notes))

		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(notes[i], focused && i == selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
