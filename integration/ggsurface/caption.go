// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggsurface

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/mandel"
)

// DefaultCaptionSize is the caption font size in points.
const DefaultCaptionSize = 13

var (
	goRegularOnce sync.Once
	goRegular     *text.FontSource
	goRegularErr  error
)

// DefaultFace returns a Go Regular face at size points.
// The font source is parsed once and shared.
func DefaultFace(size float64) (text.Face, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = text.NewFontSource(goregular.TTF)
	})
	if goRegularErr != nil {
		return nil, fmt.Errorf("ggsurface: load go regular: %w", goRegularErr)
	}
	return goRegular.Face(size), nil
}

var captionPrinter = message.NewPrinter(language.English)

// FormatCaption summarizes view for display:
//
//	re [-2, 0.5]  im [-1.25, 1.25]  zoom ×1  1,000 iterations
//
// Zoom is relative to mandel.DefaultView's width.
func FormatCaption(view mandel.ComplexRect, maxIter int) string {
	zoom := mandel.DefaultView.Width() / view.Width()
	return captionPrinter.Sprintf("re [%.6g, %.6g]  im [%.6g, %.6g]  zoom ×%.0f  %d iterations",
		view.Left, view.Right, view.Bottom, view.Top, zoom, maxIter)
}
