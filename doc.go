// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mandel renders the Mandelbrot set and drives click-to-zoom.
//
// # Overview
//
// The package has two halves:
//   - Renderer: a pure function from a pixel size and a window of the
//     complex plane to a Pixmap, using the escape-time algorithm.
//   - Controller: a state machine that turns click / move / click gestures
//     on the canvas into a square selection and, on the second click, a new
//     window of the complex plane.
//
// Session ties them to a Surface and an EventQueue for drivers that own a
// real canvas (see cmd/mandelzoom).
//
// # Quick Start
//
//	pm := mandel.Render(600, 600, mandel.DefaultView)
//	pm.SavePNG("mandel.png")
//
//	ctrl, _ := mandel.NewController(600, 600, mandel.DefaultView)
//	ctrl.Handle(mandel.Click(100, 100))
//	cmd := ctrl.Handle(mandel.Click(200, 200))
//	// cmd.Kind == mandel.CommandRender, cmd.View is the zoomed window
//
// # Coordinate Systems
//
// Pixel coordinates have the origin at the top-left, y growing down.
// Complex rectangles use Bottom <= Top.
//
// Row 0 of a rendered pixmap samples the rectangle's Top edge, and Remap
// reads canvas row 0 as Top as well, so a selection zooms into exactly
// the pixels it covers.
//
// # Colors
//
// Points that never escape are black. Escaping points cycle through 32
// bands: m = count % 32 gives RGB (5m, 7m, 13m), all fully opaque.
package mandel
