package client

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/notes-keeper/internal/config"
	"github.com/MKhiriev/notes-keeper/internal/controller"
	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/internal/mock"
	"github.com/MKhiriev/notes-keeper/models"
)

type stubUI struct {
	run func(ctx context.Context) error
}

func (s stubUI) Run(ctx context.Context) error {
	return s.run(ctx)
}

func TestNewApp_NilUI(t *testing.T) {
	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	ctrl := controller.New(serverAdapter, logger.Nop())

	_, err := NewApp(serverAdapter, ctrl, nil, config.ClientWorkers{}, logger.Nop())

	assert.ErrorIs(t, err, errNoUI)
}

func TestApp_Run_ClosesAdapter(t *testing.T) {
	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	serverAdapter.EXPECT().Close().Return(nil)
	ctrl := controller.New(serverAdapter, logger.Nop())

	app, err := NewApp(serverAdapter, ctrl, stubUI{run: func(context.Context) error { return nil }}, config.ClientWorkers{}, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, app.run(context.Background()))
}

func TestApp_Run_WrapsUIError(t *testing.T) {
	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	serverAdapter.EXPECT().Close().Return(assert.AnError)
	ctrl := controller.New(serverAdapter, logger.Nop())

	app, err := NewApp(serverAdapter, ctrl, stubUI{run: func(context.Context) error { return assert.AnError }}, config.ClientWorkers{}, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, app.run(context.Background()), assert.AnError)
}

func TestApp_Run_RefreshesWhileUIRuns(t *testing.T) {
	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	var refreshes atomic.Int64
	serverAdapter.EXPECT().ListNotes(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Note, error) {
		refreshes.Add(1)
		return []models.Note{}, nil
	}).MinTimes(2)
	serverAdapter.EXPECT().Close().Return(nil)
	ctrl := controller.New(serverAdapter, logger.Nop())

	ui := stubUI{run: func(context.Context) error {
		time.Sleep(60 * time.Millisecond)
		return nil
	}}
	app, err := NewApp(serverAdapter, ctrl, ui, config.ClientWorkers{RefreshInterval: 10 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.run(context.Background()))

	stopped := refreshes.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, refreshes.Load(), "no refreshes after the ui exits")
}
