// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggsurface draws a mandel.Session onto a gg.Context.
//
// The data flow is:
//
//	mandel.Renderer -> mandel.Pixmap -> gg.Pixmap -> PNG or ggcanvas -> Window
//
// A Surface either owns an offscreen context (New) for headless rendering
// or wraps an existing one (NewFromContext), typically the context of a
// ggcanvas.Canvas in a gogpu window. Selection outlines are built as a gg
// path and stroked in one call, so anti-aliasing and GPU acceleration come
// from gg.
//
// An optional caption line is drawn over every image; FormatCaption
// produces the standard view summary.
//
// Surface is NOT safe for concurrent use.
package ggsurface
