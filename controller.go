// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mandel

import "fmt"

// State is the selection state of a Controller.
type State uint8

const (
	// StateIdle waits for the first click of a selection.
	StateIdle State = iota
	// StateSelecting has an anchor and tracks the pointer until the second click.
	StateSelecting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// CommandKind tells the driver what to draw after an event.
type CommandKind uint8

const (
	// CommandNone: nothing changed.
	CommandNone CommandKind = iota
	// CommandRedraw: draw the last rendered image again, without overlay.
	CommandRedraw
	// CommandOverlay: draw the last rendered image, then the selection box.
	CommandOverlay
	// CommandRender: render Command.View and display it.
	CommandRender
)

func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "none"
	case CommandRedraw:
		return "redraw"
	case CommandOverlay:
		return "overlay"
	case CommandRender:
		return "render"
	default:
		return fmt.Sprintf("CommandKind(%d)", k)
	}
}

// Command is the controller's response to an event.
type Command struct {
	Kind CommandKind

	// Selection holds the drag corners for CommandOverlay and
	// CommandRender: Left/Top is the anchor, Right/Bottom the square-forced
	// live corner. It is not normalized.
	Selection PixelRect

	// View is the new complex rectangle for CommandRender.
	View ComplexRect
}

// Controller is the zoom state machine.
//
// It owns the current view and the selection anchor. It does no drawing
// and no rendering; a Session (or any other driver) executes the returned
// Commands. A Controller is not safe for concurrent use: events must be
// handled one at a time, in arrival order.
type Controller struct {
	width, height int
	view          ComplexRect
	state         State
	anchorX       int
	anchorY       int
}

// NewController creates a controller for a width x height canvas showing view.
func NewController(width, height int, view ComplexRect) (*Controller, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if !validComplex(view) {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateRect, view)
	}
	return &Controller{width: width, height: height, view: view}, nil
}

// View returns the current complex rectangle.
func (c *Controller) View() ComplexRect {
	return c.view
}

// Size returns the canvas size in pixels.
func (c *Controller) Size() (width, height int) {
	return c.width, c.height
}

// State returns the selection state.
func (c *Controller) State() State {
	return c.state
}

// Anchor returns the first corner of the selection in progress.
// ok is false when idle.
func (c *Controller) Anchor() (x, y int, ok bool) {
	if c.state != StateSelecting {
		return 0, 0, false
	}
	return c.anchorX, c.anchorY, true
}

// Handle advances the state machine by one event.
func (c *Controller) Handle(ev Event) Command {
	x := clamp(ev.X, 0, c.width)
	y := clamp(ev.Y, 0, c.height)

	switch c.state {
	case StateIdle:
		if ev.Kind == EventClick {
			c.anchorX, c.anchorY = x, y
			c.state = StateSelecting
		}
		return Command{Kind: CommandNone}

	case StateSelecting:
		sel := PixelRect{
			Left:   c.anchorX,
			Top:    c.anchorY,
			Right:  SquareCorner(c.anchorX, c.anchorY, x, y),
			Bottom: y,
		}
		if ev.Kind == EventMove {
			return Command{Kind: CommandOverlay, Selection: sel}
		}
		return c.complete(sel)
	}
	return Command{Kind: CommandNone}
}

// complete finishes a selection: the view is replaced by the selected
// region, or left alone when the selection has no area.
func (c *Controller) complete(sel PixelRect) Command {
	c.state = StateIdle
	c.anchorX, c.anchorY = 0, 0

	if sel.IsDegenerate() {
		Logger().Debug("mandel: empty selection discarded", "selection", sel.String())
		return Command{Kind: CommandRedraw, Selection: sel}
	}

	view := Remap(sel, c.view, c.width, c.height)
	if !validComplex(view) {
		// Below float64 resolution the bounds collapse; keep the old view.
		Logger().Debug("mandel: selection below float64 resolution", "view", view.String())
		return Command{Kind: CommandRedraw, Selection: sel}
	}
	Logger().Info("mandel: zoom", "from", c.view.String(), "to", view.String())
	c.view = view
	return Command{Kind: CommandRender, Selection: sel, View: view}
}

// SquareCorner returns the x coordinate that makes the drag from (x0, y0)
// to (x, y) a square: |x' - x0| == |y - y0|, on the side of x0 where x lies.
// sign(0) counts as negative, so a vertical drag (x == x0) opens to the left.
func SquareCorner(x0, y0, x, y int) int {
	return x0 + sign(x-x0)*sign(y-y0)*(y-y0)
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	return -1
}

// Remap converts a selection in canvas pixels into the complex rectangle it
// covers in view, for a width x height canvas. The result is normalized, so
// the drag may run in any of the four diagonal directions.
func Remap(sel PixelRect, view ComplexRect, width, height int) ComplexRect {
	w := float64(width)
	h := float64(height)
	dx := view.Right - view.Left
	dy := view.Top - view.Bottom

	out := ComplexRect{
		Left:   (float64(sel.Left)/w)*dx + view.Left,
		Top:    ((h-float64(sel.Top))/h)*dy + view.Bottom,
		Right:  (float64(sel.Right)/w)*dx + view.Left,
		Bottom: ((h-float64(sel.Bottom))/h)*dy + view.Bottom,
	}
	return out.Normalize()
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
