// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mandel

import "image/color"

// Surface is the canvas a Session draws on.
//
// Implementations wrap a platform canvas (see package ggsurface) or record
// the calls (see package recording). Surfaces are used from the single
// goroutine that runs the session.
type Surface interface {
	// DrawImage replaces the whole canvas with pm.
	DrawImage(pm *Pixmap)

	// BeginStroke starts a new outline. Lines drawn until EndStroke form
	// one stroked path.
	BeginStroke()

	// DrawLine adds a segment from (x0, y0) to (x1, y1) to the current
	// outline.
	DrawLine(x0, y0, x1, y1 int, width float64, c color.Color)

	// EndStroke strokes the outline started by BeginStroke.
	EndStroke()
}

// drawSelection outlines sel as four segments: anchor down to the live row,
// across to the live corner, back up, and home.
func drawSelection(s Surface, sel PixelRect, style OverlayStyle) {
	x0, y0 := sel.Left, sel.Top
	x1, y1 := sel.Right, sel.Bottom

	s.BeginStroke()
	s.DrawLine(x0, y0, x0, y1, style.LineWidth, style.Color)
	s.DrawLine(x0, y1, x1, y1, style.LineWidth, style.Color)
	s.DrawLine(x1, y1, x1, y0, style.LineWidth, style.Color)
	s.DrawLine(x1, y0, x0, y0, style.LineWidth, style.Color)
	s.EndStroke()
}
