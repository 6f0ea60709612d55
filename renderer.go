// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mandel

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/mandel/internal/parallel"
)

// Renderer errors.
var (
	// ErrInvalidSize is returned for a non-positive pixmap width or height.
	ErrInvalidSize = errors.New("mandel: invalid pixmap size")

	// ErrDegenerateRect is returned for a complex rectangle with zero or
	// negative extent on either axis, or with non-finite bounds.
	ErrDegenerateRect = errors.New("mandel: degenerate complex rectangle")
)

// Renderer renders escape-time images of the Mandelbrot set.
//
// A Renderer holds only configuration (and, with WithWorkers, a worker
// pool); it keeps no per-render state, so one Renderer may serve concurrent
// Render calls for different rectangles.
type Renderer struct {
	opts rendererOptions
	pool *parallel.WorkerPool
}

// NewRenderer creates a renderer. Call Close when it was created with
// WithWorkers to release the worker goroutines.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Renderer{opts: o}
	if o.workers != 1 {
		r.pool = parallel.NewWorkerPool(o.workers)
	}
	return r
}

// MaxIterations returns the iteration bound used by this renderer.
func (r *Renderer) MaxIterations() int {
	return r.opts.maxIter
}

// Workers returns the number of render goroutines (1 when sequential).
func (r *Renderer) Workers() int {
	if r.pool == nil {
		return 1
	}
	return r.pool.Workers()
}

// Close releases the worker pool, if any. The renderer keeps working
// sequentially afterwards.
func (r *Renderer) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// Render returns a new width x height pixmap showing view.
func (r *Renderer) Render(width, height int, view ComplexRect) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	pm := NewPixmap(width, height)
	if err := r.RenderInto(pm, view); err != nil {
		return nil, err
	}
	return pm, nil
}

// RenderInto overwrites every pixel of pm with the image of view.
// It is the allocation-free variant of Render for callers that reuse a
// buffer; pm must not be displayed while the render is in progress.
func (r *Renderer) RenderInto(pm *Pixmap, view ComplexRect) error {
	if pm == nil || pm.width <= 0 || pm.height <= 0 {
		return ErrInvalidSize
	}
	if !validComplex(view) {
		return fmt.Errorf("%w: %v", ErrDegenerateRect, view)
	}

	start := time.Now()
	var inside int
	if r.pool == nil || !r.pool.IsRunning() {
		inside = renderRows(pm, view, r.opts.maxIter, 0, pm.height)
	} else {
		bands := parallel.Bands(pm.height, r.opts.bandRows)
		counts := make([]int, len(bands))
		work := make([]func(), len(bands))
		for i, b := range bands {
			work[i] = func() {
				counts[i] = renderRows(pm, view, r.opts.maxIter, b.Y0, b.Y1)
			}
		}
		r.pool.ExecuteAll(work)
		for _, c := range counts {
			inside += c
		}
	}

	Logger().Debug("mandel: render",
		"width", pm.width,
		"height", pm.height,
		"view", view.String(),
		"max_iter", r.opts.maxIter,
		"workers", r.Workers(),
		"inside", float64(inside)/float64(pm.width*pm.height),
		"elapsed", time.Since(start))
	return nil
}

// Render is a convenience wrapper around a sequential Renderer.
// It panics on a non-positive size or a degenerate view; callers handling
// user input should use Renderer.Render and check the error.
func Render(width, height int, view ComplexRect) *Pixmap {
	pm, err := NewRenderer().Render(width, height, view)
	if err != nil {
		panic(err)
	}
	return pm
}

// PixelToComplex maps pixel (px, py) of a width x height canvas to the
// point of view it samples.
//
// Row 0 maps to view.Top and imaginary values decrease down the canvas,
// the same orientation Remap uses for selections.
func PixelToComplex(px, py, width, height int, view ComplexRect) (x0, y0 float64) {
	x0 = (float64(px)/float64(width))*(view.Right-view.Left) + view.Left
	y0 = (float64(py)/float64(height))*(view.Bottom-view.Top) + view.Top
	return x0, y0
}

// renderRows fills rows [y0, y1) of pm and returns how many of those
// pixels never escaped.
func renderRows(pm *Pixmap, view ComplexRect, maxIter, y0, y1 int) int {
	inside := 0
	for py := y0; py < y1; py++ {
		row := pm.row(py)
		for px := 0; px < pm.width; px++ {
			cx, cy := PixelToComplex(px, py, pm.width, pm.height, view)
			n := countIterations(cx, cy, maxIter)
			if n >= maxIter {
				inside++
			}
			c := ColorFor(n, maxIter)
			i := px * 4
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
	return inside
}
