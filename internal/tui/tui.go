// Package tui renders the notes client in the terminal: the note form on
// top and the card grid below it.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/notes-keeper/internal/controller"
	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/models"
)

var errNoController = errors.New("tui: controller is nil")

type TUI struct {
	ctrl      *controller.Controller
	buildInfo models.AppBuildInfo
}

func New(ctrl *controller.Controller, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	if ctrl == nil {
		return nil, errNoController
	}
	return &TUI{ctrl: ctrl, buildInfo: buildInfo}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	p := tea.NewProgram(newModel(ctx, t.ctrl, t.buildInfo), tea.WithAltScreen(), tea.WithContext(ctx))

	// Send blocks until the program reads the message, and listeners may
	// run on the program's own goroutine.
	t.ctrl.Subscribe(func(controller.State) {
		go p.Send(stateChangedMsg{})
	})

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
