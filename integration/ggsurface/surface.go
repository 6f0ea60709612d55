// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggsurface

import (
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/mandel"
)

// Surface implements mandel.Surface on top of a gg.Context.
type Surface struct {
	dc      *gg.Context
	face    text.Face
	caption func() string

	started bool // a stroke path has a current point
}

var _ mandel.Surface = (*Surface)(nil)

// Option configures a Surface.
type Option func(*Surface)

// WithCaption draws the string returned by fn at the bottom-left corner
// after every image, using face. fn is evaluated at draw time so it can
// describe the view that was just rendered.
func WithCaption(face text.Face, fn func() string) Option {
	return func(s *Surface) {
		s.face = face
		s.caption = fn
	}
}

// New creates a Surface backed by a fresh width x height offscreen context.
func New(width, height int, opts ...Option) *Surface {
	pm := gg.NewPixmap(width, height)
	return NewFromContext(gg.NewContext(width, height, gg.WithPixmap(pm)), opts...)
}

// NewFromContext wraps dc. The caller keeps ownership of dc.
func NewFromContext(dc *gg.Context, opts ...Option) *Surface {
	s := &Surface{dc: dc}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Context returns the wrapped context.
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// DrawImage implements mandel.Surface. Rendered pixmaps are opaque, so the
// bytes are copied straight into the target; a pixmap of another size is
// drawn through gg at the origin.
func (s *Surface) DrawImage(pm *mandel.Pixmap) {
	if pm == nil {
		return
	}
	s.dc.ClearPath()
	s.started = false

	target := s.dc.ResizeTarget()
	if target != nil && target.Width() == pm.Width() && target.Height() == pm.Height() {
		// Pending GPU shapes would land on top of the new image.
		if err := s.dc.FlushGPU(); err != nil {
			mandel.Logger().Warn("ggsurface: gpu flush failed", "err", err)
		}
		copy(target.Data(), pm.Data())
	} else {
		s.dc.DrawImage(gg.ImageBufFromImage(pm), 0, 0)
	}

	s.drawCaption()
}

// BeginStroke implements mandel.Surface.
func (s *Surface) BeginStroke() {
	s.dc.ClearPath()
	s.started = false
}

// DrawLine implements mandel.Surface. Consecutive segments sharing an
// endpoint extend the same subpath.
func (s *Surface) DrawLine(x0, y0, x1, y1 int, width float64, c color.Color) {
	s.dc.SetLineWidth(width)
	if c != nil {
		s.dc.SetColor(c)
	}
	fx0, fy0 := float64(x0), float64(y0)
	if cx, cy, ok := s.dc.GetCurrentPoint(); !s.started || !ok || cx != fx0 || cy != fy0 {
		s.dc.MoveTo(fx0, fy0)
		s.started = true
	}
	s.dc.LineTo(float64(x1), float64(y1))
}

// EndStroke implements mandel.Surface.
func (s *Surface) EndStroke() {
	if !s.started {
		return
	}
	if err := s.dc.Stroke(); err != nil {
		mandel.Logger().Warn("ggsurface: stroke failed", "err", err)
	}
	s.started = false
}

// Image returns the current canvas contents.
func (s *Surface) Image() *mandel.Pixmap {
	_ = s.dc.FlushGPU()
	src := s.dc.ResizeTarget()
	pm := mandel.NewPixmap(src.Width(), src.Height())
	copy(pm.Data(), src.Data())
	return pm
}

// EncodePNG writes the canvas to w in PNG format.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// SavePNG saves the canvas to a PNG file.
func (s *Surface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

func (s *Surface) drawCaption() {
	if s.face == nil || s.caption == nil {
		return
	}
	line := s.caption()
	if line == "" {
		return
	}
	const margin = 8.0

	m := s.face.Metrics()
	w := s.face.Advance(line)
	h := float64(s.dc.Height())

	s.dc.SetRGBA(0, 0, 0, 0.6)
	s.dc.DrawRectangle(0, h-m.LineHeight()-margin, w+2*margin, m.LineHeight()+margin)
	if err := s.dc.Fill(); err != nil {
		mandel.Logger().Warn("ggsurface: caption backdrop failed", "err", err)
	}

	s.dc.SetFont(s.face)
	s.dc.SetRGBA(1, 1, 1, 1)
	s.dc.DrawString(line, margin, h-margin/2-m.Descent)
}
