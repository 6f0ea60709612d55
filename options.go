// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mandel

import "image/color"

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	// Sequential render with the default iteration bound
//	r := mandel.NewRenderer()
//
//	// Deeper zooms, rows spread across 8 goroutines
//	r := mandel.NewRenderer(mandel.WithMaxIterations(4000), mandel.WithWorkers(8))
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	maxIter  int
	workers  int
	bandRows int
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		maxIter: MaxIterations,
		workers: 1,
	}
}

// WithMaxIterations sets the escape-time iteration bound.
// Values below 1 are ignored.
func WithMaxIterations(n int) RendererOption {
	return func(o *rendererOptions) {
		if n >= 1 {
			o.maxIter = n
		}
	}
}

// WithWorkers renders horizontal bands on n goroutines.
// n == 1 (the default) renders on the caller's goroutine; n <= 0 uses
// GOMAXPROCS workers.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithBandRows sets the number of rows per parallel job.
// Only meaningful together with WithWorkers.
func WithBandRows(rows int) RendererOption {
	return func(o *rendererOptions) {
		o.bandRows = rows
	}
}

// SessionOption configures a Session.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	overlay OverlayStyle
}

// OverlayStyle describes the selection outline.
type OverlayStyle struct {
	Color     color.Color
	LineWidth float64
}

// DefaultOverlayStyle is a 2px red outline.
var DefaultOverlayStyle = OverlayStyle{
	Color:     color.RGBA{R: 255, A: 255},
	LineWidth: 2,
}

func defaultSessionOptions() sessionOptions {
	return sessionOptions{overlay: DefaultOverlayStyle}
}

// WithOverlayStyle sets the selection outline style. A nil color or a
// non-positive width keeps the corresponding default.
func WithOverlayStyle(s OverlayStyle) SessionOption {
	return func(o *sessionOptions) {
		if s.Color != nil {
			o.overlay.Color = s.Color
		}
		if s.LineWidth > 0 {
			o.overlay.LineWidth = s.LineWidth
		}
	}
}
