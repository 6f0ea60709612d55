// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mandel

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotStarted is returned by Session.Apply before Session.Start.
var ErrNotStarted = errors.New("mandel: session not started")

// Session drives a Controller, a Renderer and a Surface from a stream of
// pointer events. It owns the last rendered image (the base) and is the
// single consumer of its events: Apply must not be called concurrently.
type Session struct {
	ctrl     *Controller
	renderer *Renderer
	surface  Surface
	opts     sessionOptions
	renderFn func(width, height int, view ComplexRect) (*Pixmap, error)

	base     *Pixmap
	renders  int
	overlays int
}

// NewSession creates a session. Nothing is drawn until Start.
func NewSession(ctrl *Controller, r *Renderer, s Surface, opts ...SessionOption) *Session {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{ctrl: ctrl, renderer: r, surface: s, opts: o, renderFn: r.Render}
}

// Controller returns the session's controller.
func (s *Session) Controller() *Controller {
	return s.ctrl
}

// Base returns the last rendered image, or nil before Start.
// The pixmap is replaced, never modified, by later renders.
func (s *Session) Base() *Pixmap {
	return s.base
}

// Renders returns how many images the session has rendered.
func (s *Session) Renders() int {
	return s.renders
}

// Overlays returns how many selection boxes the session has drawn.
func (s *Session) Overlays() int {
	return s.overlays
}

// Start renders the controller's current view and draws it.
func (s *Session) Start() error {
	return s.render(s.ctrl.View())
}

// Apply feeds ev to the controller and executes the resulting command.
// If a zoom fails to render, the controller goes back to the view of the
// current base image, which is drawn again, and the error is returned.
func (s *Session) Apply(ev Event) (Command, error) {
	if s.base == nil {
		return Command{}, ErrNotStarted
	}

	prev := s.ctrl.View()
	cmd := s.ctrl.Handle(ev)
	switch cmd.Kind {
	case CommandRedraw:
		s.surface.DrawImage(s.base)
	case CommandOverlay:
		s.surface.DrawImage(s.base)
		drawSelection(s.surface, cmd.Selection, s.opts.overlay)
		s.overlays++
	case CommandRender:
		if err := s.render(cmd.View); err != nil {
			// Keep the controller on the view the base image shows.
			s.ctrl.view = prev
			s.surface.DrawImage(s.base)
			return cmd, err
		}
	}
	return cmd, nil
}

// Run applies events from q in order until q is closed or ctx ends.
// It returns nil when q is closed and drained, ctx.Err() on cancellation,
// or the first render error.
func (s *Session) Run(ctx context.Context, q *EventQueue) error {
	if s.base == nil {
		if err := s.Start(); err != nil {
			return err
		}
	}
	events := q.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, err := s.Apply(ev); err != nil {
				return err
			}
		}
	}
}

// render produces a fresh base for view and displays it. The previous base
// stays valid until the new one is complete.
func (s *Session) render(view ComplexRect) error {
	w, h := s.ctrl.Size()
	pm, err := s.renderFn(w, h, view)
	if err != nil {
		return fmt.Errorf("mandel: render %v: %w", view, err)
	}
	s.base = pm
	s.renders++
	s.surface.DrawImage(pm)
	return nil
}
