package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/notes-keeper/internal/controller"
	"github.com/MKhiriev/notes-keeper/models"
)

type focusArea int

const (
	focusTitle focusArea = iota
	focusContent
	focusGrid
)

type model struct {
	ctx       context.Context
	ctrl      *controller.Controller
	buildInfo models.AppBuildInfo

	state    controller.State
	form     formModel
	focus    focusArea
	selected int
	width    int

	busy          bool
	status        string
	confirm       *confirmModel
	showBuildInfo bool
}

func newModel(ctx context.Context, ctrl *controller.Controller, buildInfo models.AppBuildInfo) model {
	m := model{
		ctx:       ctx,
		ctrl:      ctrl,
		buildInfo: buildInfo,
		state:     ctrl.State(),
		form:      newFormModel(),
	}
	m.form.load(m.state.Form)
	m.form.focus(focusTitle)
	return m
}

func (m model) Init() tea.Cmd {
	return m.cmdRefresh()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case stateChangedMsg, refreshDoneMsg:
		m.syncState()
		return m, nil
	case submitDoneMsg:
		m.busy = false
		m.syncState()
		m.form.load(m.state.Form)
		if msg.err != nil {
			return m, nil
		}
		m.status = "Note saved"
		return m, cmdClearStatus()
	case removeDoneMsg:
		m.busy = false
		m.syncState()
		m.form.load(m.state.Form)
		if msg.err != nil {
			return m, nil
		}
		m.status = "Note deleted"
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = "Copied to clipboard"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Notes"))
	b.WriteString("\n\n")
	b.WriteString(m.form.View(controller.SubmitLabel(m.state), m.focus != focusGrid, m.busy))
	b.WriteString("\n\n")
	b.WriteString(renderGrid(m.state.Notes, m.selected, columnsFor(m.width), m.focus == focusGrid))
	b.WriteString("\n\n")

	switch {
	case m.state.Err != nil:
		b.WriteString(errorStyle.Render("Error: " + errorMessage(m.state.Err)))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help()))

	if m.confirm != nil {
		b.WriteString("\n\n")
		b.WriteString(m.confirm.View())
	}

	return appStyle.Render(b.String())
}

func (m model) help() string {
	if m.focus == focusGrid {
		return "arrows move  e edit  d delete  c copy  r refresh  tab form  v about  q quit"
	}
	if m.state.Editing() {
		return "tab next field  ctrl+s save  esc cancel edit  ctrl+c quit"
	}
	return "tab next field  ctrl+s save  esc notes  ctrl+c quit"
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQ) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			id := m.confirm.noteID
			m.confirm = nil
			m.busy = true
			return m, m.cmdRemove(id)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.confirm = nil
		}
		return m, nil
	}

	if m.focus == focusGrid {
		return m.updateGrid(msg)
	}
	return m.updateForm(msg)
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.submit):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdSubmit()
	case key.Matches(msg, keys.esc):
		if m.state.Editing() {
			m.state = m.ctrl.CancelEdit()
			m.form.load(m.state.Form)
			return m, nil
		}
		return m, m.setFocus(focusGrid)
	case key.Matches(msg, keys.tab):
		return m, m.setFocus(m.focus + 1)
	case key.Matches(msg, keys.backtab):
		if m.focus == focusTitle {
			return m, m.setFocus(focusGrid)
		}
		return m, m.setFocus(m.focus - 1)
	}

	if m.busy {
		return m, nil
	}

	before := m.form.value()
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	if after := m.form.value(); after != before {
		m.state = m.ctrl.SetForm(after)
	}
	return m, cmd
}

func (m model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := columnsFor(m.width)
	total := len(m.state.Notes)

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.tab):
		return m, m.setFocus(focusTitle)
	case key.Matches(msg, keys.backtab):
		return m, m.setFocus(focusContent)
	case key.Matches(msg, keys.left):
		m.selected = moveSelection(m.selected, -1, total)
	case key.Matches(msg, keys.right):
		m.selected = moveSelection(m.selected, 1, total)
	case key.Matches(msg, keys.up):
		m.selected = moveSelection(m.selected, -columns, total)
	case key.Matches(msg, keys.down):
		m.selected = moveSelection(m.selected, columns, total)
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	case key.Matches(msg, keys.esc):
		if m.state.Editing() {
			m.state = m.ctrl.CancelEdit()
			m.form.load(m.state.Form)
		}
	case key.Matches(msg, keys.edit):
		note, ok := m.current()
		if !ok {
			return m, nil
		}
		m.state = m.ctrl.BeginEdit(note)
		m.form.load(m.state.Form)
		return m, m.setFocus(focusTitle)
	case key.Matches(msg, keys.delete):
		note, ok := m.current()
		if !ok || m.busy {
			return m, nil
		}
		m.confirm = &confirmModel{noteID: note.ID, title: note.Title}
	case key.Matches(msg, keys.copy):
		note, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(note.Content)
	}

	return m, nil
}

func (m *model) setFocus(area focusArea) tea.Cmd {
	if area > focusGrid {
		area = focusTitle
	}
	m.focus = area
	return m.form.focus(area)
}

// syncState pulls the latest controller state. The form inputs are not
// touched: they are the source of the draft while the user types.
func (m *model) syncState() {
	m.state = m.ctrl.State()
	m.selected = moveSelection(m.selected, 0, len(m.state.Notes))
}

func (m model) current() (models.Note, bool) {
	if m.selected < 0 || m.selected >= len(m.state.Notes) {
		return models.Note{}, false
	}
	return m.state.Notes[m.selected], true
}

func (m model) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	ctrl := m.ctrl
	return func() tea.Msg {
		return refreshDoneMsg{err: ctrl.Refresh(ctx)}
	}
}

func (m model) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	ctrl := m.ctrl
	return func() tea.Msg {
		return submitDoneMsg{err: ctrl.Submit(ctx)}
	}
}

func (m model) cmdRemove(id string) tea.Cmd {
	ctx := m.ctx
	ctrl := m.ctrl
	return func() tea.Msg {
		return removeDoneMsg{err: ctrl.Remove(ctx, id)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
