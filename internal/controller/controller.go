// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/notes-keeper/internal/adapter"
	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/internal/workers"
	"github.com/MKhiriev/notes-keeper/models"
)

// Controller drives refresh, submit and remove through the server adapter.
// It is safe for concurrent use.
type Controller struct {
	adapter adapter.ServerAdapter

	mu    sync.Mutex
	state State
	seq   atomic.Uint64

	listenersMu sync.RWMutex
	listeners   []func(State)

	logger *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *Controller {
	return &Controller{
		adapter: serverAdapter,
		state:   State{Notes: []models.Note{}},
		logger:  logger,
	}
}

// Subscribe registers fn to be called with the new state after every
// change. fn runs on the goroutine that made the change.
func (c *Controller) Subscribe(fn func(State)) {
	c.listenersMu.Lock()
	defer c.listenersMu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshot(c.state)
}

func (c *Controller) SetForm(form Form) State {
	return c.update(func(s State) State { return SetForm(s, form) })
}

func (c *Controller) BeginEdit(note models.Note) State {
	return c.update(func(s State) State { return BeginEdit(s, note) })
}

func (c *Controller) CancelEdit() State {
	return c.update(CancelEdit)
}

// Refresh fetches the full note list. Responses of refreshes that were
// overtaken by a later one are dropped.
func (c *Controller) Refresh(ctx context.Context) error {
	seq := c.seq.Add(1)

	notes, err := c.adapter.ListNotes(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "*Controller.Refresh").Uint64("seq", seq).Msg("notes request failed")
		c.update(func(s State) State {
			if seq <= s.RefreshSeq {
				return s
			}
			return Failed(s, err)
		})
		return err
	}

	c.update(func(s State) State { return ApplyRefresh(s, seq, notes) })
	return nil
}

// Submit creates a note from the form, or updates the note being edited,
// then clears the form and refreshes.
func (c *Controller) Submit(ctx context.Context) error {
	current := c.State()
	input := current.Form.Input()

	var err error
	if current.Editing() {
		_, err = c.adapter.UpdateNote(ctx, current.EditingID, input)
	} else {
		_, err = c.adapter.CreateNote(ctx, input)
	}
	if err != nil {
		c.fail(err, "Submit")
		return err
	}

	c.update(Submitted)
	return c.Refresh(ctx)
}

// Remove deletes the note with the given id, then refreshes.
func (c *Controller) Remove(ctx context.Context, id string) error {
	if err := c.adapter.DeleteNote(ctx, id); err != nil {
		c.fail(err, "Remove")
		return err
	}

	c.update(func(s State) State { return Removed(s, id) })
	return c.Refresh(ctx)
}

// RefreshWorker returns a worker that refreshes every interval. A zero
// interval yields a worker that never runs.
func (c *Controller) RefreshWorker(interval time.Duration) workers.Worker {
	return workers.NewPeriodicWorker("refresh", interval, func(ctx context.Context) {
		_ = c.Refresh(ctx)
	}, c.logger)
}

func (c *Controller) fail(err error, op string) {
	c.logger.Err(err).Str("func", "*Controller."+op).Msg("notes request failed")
	c.update(func(s State) State { return Failed(s, err) })
}

func (c *Controller) update(fn func(State) State) State {
	c.mu.Lock()
	c.state = fn(c.state)
	next := snapshot(c.state)
	c.mu.Unlock()

	c.listenersMu.RLock()
	listeners := slices.Clone(c.listeners)
	c.listenersMu.RUnlock()

	for _, listener := range listeners {
		listener(next)
	}
	return next
}

func snapshot(s State) State {
	s.Notes = slices.Clone(s.Notes)
	return s
}
