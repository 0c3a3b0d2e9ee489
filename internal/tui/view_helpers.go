package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderPage frames body in a bordered box under a bold title, with the
// page's hot keys below it.
func renderPage(title, body, hotKeys string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	help := "ctrl+c: quit"
	if hotKeys = strings.TrimSpace(hotKeys); hotKeys != "" {
		help = hotKeys + "  " + help
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		overlayBoxStyle.Render(body),
		helpStyle.Render(help),
	)
}

// fitText cuts v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// firstLines keeps at most n lines of v, each fitted to width.
func firstLines(v string, n, width int) string {
	lines := strings.Split(strings.TrimRight(v, "\n"), "\n")
	cut := len(lines) > n
	if cut {
		lines = lines[:n]
	}
	for i, line := range lines {
		lines[i] = fitText(line, width)
	}
	if cut && n > 0 {
		lines[n-1] = fitText(lines[n-1]+"...", width)
	}
	return strings.Join(lines, "\n")
}
