package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/notes-keeper/internal/controller"
)

const (
	formWidth     = 60
	contentHeight = 5
)

type formModel struct {
	title   textinput.Model
	content textarea.Model
}

func newFormModel() formModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Prompt = ""
	title.Width = formWidth

	content := textarea.New()
	content.Placeholder = "Content"
	content.ShowLineNumbers = false
	content.SetWidth(formWidth)
	content.SetHeight(contentHeight)

	return formModel{title: title, content: content}
}

func (f formModel) value() controller.Form {
	return controller.Form{Title: f.title.Value(), Content: f.content.Value()}
}

// load replaces the inputs with form. Inputs already holding the same text
// are left alone so their cursor does not jump.
func (f *formModel) load(form controller.Form) {
	if f.title.Value() != form.Title {
		f.title.SetValue(form.Title)
	}
	if f.content.Value() != form.Content {
		f.content.SetValue(form.Content)
	}
}

func (f *formModel) focus(area focusArea) tea.Cmd {
	f.title.Blur()
	f.content.Blur()

	switch area {
	case focusTitle:
		return f.title.Focus()
	case focusContent:
		return f.content.Focus()
	}
	return nil
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	var titleCmd, contentCmd tea.Cmd
	f.title, titleCmd = f.title.Update(msg)
	f.content, contentCmd = f.content.Update(msg)
	return f, tea.Batch(titleCmd, contentCmd)
}

func (f formModel) View(label string, focused, busy bool) string {
	out := titleStyle.Render(label) + "\n\n"
	out += "Title\n" + f.title.View() + "\n\n"
	out += "Content\n" + f.content.View() + "\n\n"

	button := buttonStyle.Render(label)
	if busy {
		button = buttonStyle.Render("Saving...")
	}
	out += button + "  " + helpStyle.Render("ctrl+s")

	if focused {
		return formFocusedStyle.Render(out)
	}
	return formStyle.Render(out)
}
