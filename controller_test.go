// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mandel

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-12

func approxEqual(a, b ComplexRect) bool {
	return math.Abs(a.Left-b.Left) < eps && math.Abs(a.Right-b.Right) < eps &&
		math.Abs(a.Top-b.Top) < eps && math.Abs(a.Bottom-b.Bottom) < eps
}

func newTestController(t *testing.T) *Controller {
	t.Helper()
	c, err := NewController(600, 600, DefaultView)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

func TestNewControllerErrors(t *testing.T) {
	if _, err := NewController(0, 600, DefaultView); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero width error = %v, want ErrInvalidSize", err)
	}
	if _, err := NewController(600, 600, ComplexRect{}); !errors.Is(err, ErrDegenerateRect) {
		t.Errorf("zero view error = %v, want ErrDegenerateRect", err)
	}
}

func TestSquareCorner(t *testing.T) {
	tests := []struct {
		name         string
		x0, y0, x, y int
		want         int
	}{
		{"down-right", 10, 10, 30, 50, 50},
		{"down-left", 100, 10, 60, 50, 60},
		{"up-right", 10, 100, 30, 50, 60},
		{"up-left", 100, 100, 60, 50, 50},
		{"vertical drag opens left", 100, 100, 100, 140, 60},
		{"horizontal drag collapses", 100, 100, 180, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquareCorner(tt.x0, tt.y0, tt.x, tt.y)
			if got != tt.want {
				t.Errorf("SquareCorner(%d,%d,%d,%d) = %d, want %d", tt.x0, tt.y0, tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSquareCornerIsSquare(t *testing.T) {
	for x0 := 0; x0 <= 60; x0 += 15 {
		for y0 := 0; y0 <= 60; y0 += 15 {
			for x := 0; x <= 60; x += 7 {
				for y := 0; y <= 60; y += 7 {
					xp := SquareCorner(x0, y0, x, y)
					if abs(xp-x0) != abs(y-y0) {
						t.Fatalf("SquareCorner(%d,%d,%d,%d) = %d: |dx| %d != |dy| %d",
							x0, y0, x, y, xp, abs(xp-x0), abs(y-y0))
					}
				}
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestRemapFullCanvasIsIdentity(t *testing.T) {
	views := []ComplexRect{DefaultView, unitSquare, presets["spiral"]}
	for _, view := range views {
		got := Remap(PixelRect{Left: 0, Top: 0, Right: 600, Bottom: 600}, view, 600, 600)
		if !approxEqual(got, view) {
			t.Errorf("Remap(full canvas, %v) = %v", view, got)
		}
	}
}

func TestRemapNormalizesAllDirections(t *testing.T) {
	// The four diagonal drags over the same 100px square select the same region.
	want := Remap(PixelRect{Left: 100, Top: 100, Right: 200, Bottom: 200}, DefaultView, 600, 600)

	drags := []struct {
		name                   string
		anchorX, anchorY, x, y int
	}{
		{"down-right", 100, 100, 200, 200},
		{"down-left", 200, 100, 100, 200},
		{"up-right", 100, 200, 200, 100},
		{"up-left", 200, 200, 100, 100},
	}

	for _, d := range drags {
		t.Run(d.name, func(t *testing.T) {
			c := newTestController(t)
			c.Handle(Click(d.anchorX, d.anchorY))
			cmd := c.Handle(Click(d.x, d.y))

			if cmd.Kind != CommandRender {
				t.Fatalf("Kind = %v, want render", cmd.Kind)
			}
			v := cmd.View
			if v.Left > v.Right || v.Bottom > v.Top {
				t.Errorf("view %v is not normalized", v)
			}
			if !approxEqual(v, want) {
				t.Errorf("view = %v, want %v", v, want)
			}
			if c.View() != v {
				t.Errorf("controller view = %v, want %v", c.View(), v)
			}
		})
	}
}

func TestRemapValues(t *testing.T) {
	// Left half, top half of the canvas on the unit square. Row 0 is the
	// Top edge for remapping.
	got := Remap(PixelRect{Left: 0, Top: 0, Right: 2, Bottom: 2}, unitSquare, 4, 4)
	want := ComplexRect{Left: -1, Right: 0, Top: 1, Bottom: 0}
	if !approxEqual(got, want) {
		t.Errorf("Remap = %v, want %v", got, want)
	}
}

func TestControllerStateMachine(t *testing.T) {
	c := newTestController(t)

	if c.State() != StateIdle {
		t.Fatalf("initial state = %v, want idle", c.State())
	}
	if _, _, ok := c.Anchor(); ok {
		t.Error("Anchor() ok while idle")
	}

	if cmd := c.Handle(Move(5, 5)); cmd.Kind != CommandNone {
		t.Errorf("idle Move: Kind = %v, want none", cmd.Kind)
	}
	if c.State() != StateIdle {
		t.Errorf("idle Move changed state to %v", c.State())
	}

	var renders, overlays int
	for _, ev := range []Event{Click(10, 10), Move(20, 20), Click(30, 30)} {
		switch c.Handle(ev).Kind {
		case CommandRender:
			renders++
		case CommandOverlay:
			overlays++
		}
		if ev == Click(10, 10) {
			if c.State() != StateSelecting {
				t.Fatalf("after first click state = %v, want selecting", c.State())
			}
			if x, y, ok := c.Anchor(); !ok || x != 10 || y != 10 {
				t.Errorf("Anchor() = (%d, %d, %v), want (10, 10, true)", x, y, ok)
			}
		}
	}

	if renders != 1 || overlays != 1 {
		t.Errorf("renders = %d, overlays = %d, want 1 and 1", renders, overlays)
	}
	if c.State() != StateIdle {
		t.Errorf("final state = %v, want idle", c.State())
	}
}

func TestControllerMoveOverlay(t *testing.T) {
	c := newTestController(t)
	c.Handle(Click(100, 100))

	cmd := c.Handle(Move(130, 160))
	want := PixelRect{Left: 100, Top: 100, Right: 160, Bottom: 160}
	if cmd.Kind != CommandOverlay || cmd.Selection != want {
		t.Errorf("Move = %+v, want overlay %v", cmd, want)
	}
	if c.View() != DefaultView {
		t.Error("Move changed the view")
	}
	if c.State() != StateSelecting {
		t.Errorf("state after Move = %v, want selecting", c.State())
	}
}

func TestControllerDegenerateSelectionDiscarded(t *testing.T) {
	tests := []struct {
		name          string
		first, second Event
	}{
		{"click without drag", Click(50, 50), Click(50, 50)},
		{"horizontal drag", Click(50, 50), Click(250, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t)
			c.Handle(tt.first)
			cmd := c.Handle(tt.second)

			if cmd.Kind != CommandRedraw {
				t.Errorf("Kind = %v, want redraw", cmd.Kind)
			}
			if c.View() != DefaultView {
				t.Errorf("view = %v, want unchanged %v", c.View(), DefaultView)
			}
			if c.State() != StateIdle {
				t.Errorf("state = %v, want idle", c.State())
			}
		})
	}
}

func TestControllerClampsCoordinates(t *testing.T) {
	c := newTestController(t)
	c.Handle(Click(-40, -40))
	x, y, _ := c.Anchor()
	if x != 0 || y != 0 {
		t.Fatalf("anchor = (%d, %d), want (0, 0)", x, y)
	}

	cmd := c.Handle(Click(900, 900))
	if cmd.Kind != CommandRender {
		t.Fatalf("Kind = %v, want render", cmd.Kind)
	}
	if !approxEqual(cmd.View, DefaultView) {
		t.Errorf("full clamped drag view = %v, want %v", cmd.View, DefaultView)
	}
}

func TestControllerSuccessiveZooms(t *testing.T) {
	c := newTestController(t)
	prev := c.View()
	for i := 0; i < 5; i++ {
		c.Handle(Click(150, 150))
		cmd := c.Handle(Click(450, 450))
		if cmd.Kind != CommandRender {
			t.Fatalf("zoom %d: Kind = %v", i, cmd.Kind)
		}
		if w, pw := cmd.View.Width(), prev.Width(); math.Abs(w-pw/2) > eps {
			t.Errorf("zoom %d: width = %v, want %v", i, w, pw/2)
		}
		prev = cmd.View
	}
}

func TestNestedZoomContainsSelectedPoint(t *testing.T) {
	// The first zoom leaves a view off the real axis, so an up/down mirror
	// between rendering and remapping would miss the selected point.
	pixels := [][2]int{{50, 30}, {500, 80}, {300, 550}}
	for _, p := range pixels {
		c := newTestController(t)
		c.Handle(Click(100, 100))
		if cmd := c.Handle(Click(200, 200)); cmd.Kind != CommandRender {
			t.Fatalf("first zoom: Kind = %v, want render", cmd.Kind)
		}

		x, y := PixelToComplex(p[0], p[1], 600, 600, c.View())
		c.Handle(Click(p[0]-10, p[1]-10))
		cmd := c.Handle(Click(p[0]+10, p[1]+10))
		if cmd.Kind != CommandRender {
			t.Fatalf("zoom at %v: Kind = %v, want render", p, cmd.Kind)
		}
		v := cmd.View
		if x < v.Left || x > v.Right || y < v.Bottom || y > v.Top {
			t.Errorf("zoom at %v: view %v does not contain (%v, %v)", p, v, x, y)
		}
	}
}
