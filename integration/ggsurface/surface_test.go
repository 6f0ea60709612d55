// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggsurface

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/gogpu/mandel"
)

func blackPixmap(w, h int) *mandel.Pixmap {
	pm := mandel.NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pm.Set(x, y, color.RGBA{A: 255})
		}
	}
	return pm
}

func TestDrawImageCopiesPixels(t *testing.T) {
	pm := mandel.Render(24, 24, mandel.DefaultView)
	s := New(24, 24)
	s.DrawImage(pm)

	got := s.Image()
	if !bytes.Equal(got.Data(), pm.Data()) {
		t.Error("canvas differs from the drawn pixmap")
	}
}

func TestDrawImageOtherSize(t *testing.T) {
	s := New(10, 10)
	s.DrawImage(blackPixmap(4, 4))
	s.DrawImage(nil)

	if c := s.Image().RGBAAt(1, 1); c.A == 0 {
		t.Errorf("pixel (1,1) = %v, want the drawn image", c)
	}
}

func TestStrokeOutline(t *testing.T) {
	s := New(20, 20)
	s.DrawImage(blackPixmap(20, 20))

	red := color.RGBA{R: 255, A: 255}
	s.BeginStroke()
	s.DrawLine(5, 5, 5, 15, 2, red)
	s.DrawLine(5, 15, 15, 15, 2, red)
	s.EndStroke()

	img := s.Image()
	for _, p := range [][2]int{{4, 10}, {5, 10}, {10, 14}, {10, 15}} {
		c := img.RGBAAt(p[0], p[1])
		if c.R < 200 || c.G > 50 || c.B > 50 {
			t.Errorf("pixel %v = %v, want red", p, c)
		}
	}
	if c := img.RGBAAt(12, 8); c.R != 0 {
		t.Errorf("pixel inside the outline = %v, want black", c)
	}
}

func TestEndStrokeWithoutLines(t *testing.T) {
	s := New(8, 8)
	s.DrawImage(blackPixmap(8, 8))
	s.BeginStroke()
	s.EndStroke()

	if !bytes.Equal(s.Image().Data(), blackPixmap(8, 8).Data()) {
		t.Error("empty stroke changed the canvas")
	}
}

func TestSessionOnSurface(t *testing.T) {
	ctrl, err := mandel.NewController(32, 32, mandel.DefaultView)
	if err != nil {
		t.Fatal(err)
	}
	s := New(32, 32)
	sess := mandel.NewSession(ctrl, mandel.NewRenderer(), s)
	if err := sess.Start(); err != nil {
		t.Fatal(err)
	}
	if _, err := sess.Apply(mandel.Click(4, 4)); err != nil {
		t.Fatal(err)
	}
	if _, err := sess.Apply(mandel.Move(20, 20)); err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(s.Image().Data(), sess.Base().Data()) {
		t.Error("overlay did not change the canvas")
	}

	if _, err := sess.Apply(mandel.Click(20, 20)); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(s.Image().Data(), sess.Base().Data()) {
		t.Error("canvas after zoom is not the new base")
	}
}

func TestEncodePNG(t *testing.T) {
	s := New(12, 9)
	s.DrawImage(mandel.Render(12, 9, mandel.DefaultView))

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
		t.Errorf("decoded bounds = %v, want 12x9", b)
	}
}

func TestCaptionDrawn(t *testing.T) {
	face, err := DefaultFace(DefaultCaptionSize)
	if err != nil {
		t.Fatalf("DefaultFace: %v", err)
	}

	plain := New(200, 60)
	plain.DrawImage(blackPixmap(200, 60))

	calls := 0
	captioned := New(200, 60, WithCaption(face, func() string {
		calls++
		return "zoom ×1"
	}))
	captioned.DrawImage(blackPixmap(200, 60))

	if calls != 1 {
		t.Errorf("caption evaluated %d times, want 1", calls)
	}
	if bytes.Equal(plain.Image().Data(), captioned.Image().Data()) {
		t.Error("caption left the canvas unchanged")
	}
	// The top rows stay clear of the caption band.
	if c := captioned.Image().RGBAAt(100, 2); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("pixel above caption = %v, want black", c)
	}
}

func TestFormatCaption(t *testing.T) {
	got := FormatCaption(mandel.DefaultView, mandel.MaxIterations)
	for _, want := range []string{"zoom ×1 ", "1,000 iterations", "re [", "im ["} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatCaption(DefaultView) = %q, missing %q", got, want)
		}
	}

	quarter := mandel.ComplexRect{Left: -1, Right: -0.375, Bottom: -0.3125, Top: 0.3125}
	if got := FormatCaption(quarter, 50); !strings.Contains(got, "zoom ×4 ") {
		t.Errorf("FormatCaption(quarter) = %q, want zoom ×4", got)
	}
}
