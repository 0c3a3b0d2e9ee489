package tui

import "fmt"

// confirmModel asks before a note is deleted.
type confirmModel struct {
	noteID string
	title  string
}

func (m confirmModel) View() string {
	name := m.title
	if name == "" {
		name = "untitled note"
	}

	question := fmt.Sprintf("Delete %q?", fitText(name, cardWidth))
	return overlayBoxStyle.Render(question + "\n\n" + helpStyle.Render("y yes    n no"))
}
