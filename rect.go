// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mandel

import "fmt"

// Number is the set of coordinate types a Rect can hold.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Rect is an axis-aligned rectangle.
//
// The same type serves two coordinate systems with opposite vertical
// conventions:
//   - ComplexRect: Bottom is the lower imaginary bound, so Bottom <= Top.
//   - PixelRect: top-left origin with y growing down, so Top <= Bottom.
//
// Rects are values. Operations return new rects and never modify the receiver.
type Rect[T Number] struct {
	Top, Bottom, Left, Right T
}

// ComplexRect is a window in the complex plane.
// Left and Right bound the real axis, Bottom and Top the imaginary axis.
type ComplexRect = Rect[float64]

// PixelRect is a rectangle in canvas pixel coordinates.
type PixelRect = Rect[int]

// DefaultView is the initial window: a 2.5 x 2.5 square showing the whole set.
var DefaultView = ComplexRect{Left: -2.0, Right: 0.5, Top: 1.25, Bottom: -1.25}

// Width returns Right - Left.
func (r Rect[T]) Width() T {
	return r.Right - r.Left
}

// Height returns Top - Bottom. For pixel rects the result is negative when
// the rect is normalized; use Bottom - Top there.
func (r Rect[T]) Height() T {
	return r.Top - r.Bottom
}

// Normalize returns r with Left <= Right and Bottom <= Top, swapping
// bounds as needed. This is the complex-plane convention.
func (r Rect[T]) Normalize() Rect[T] {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Bottom > r.Top {
		r.Bottom, r.Top = r.Top, r.Bottom
	}
	return r
}

// IsDegenerate reports whether r has zero width or zero height.
func (r Rect[T]) IsDegenerate() bool {
	return r.Left == r.Right || r.Top == r.Bottom
}

// String formats the rect as left,right,bottom,top.
func (r Rect[T]) String() string {
	return fmt.Sprintf("[%v,%v]x[%v,%v]", r.Left, r.Right, r.Bottom, r.Top)
}

// validComplex reports whether r can be rendered: finite, non-degenerate,
// Left < Right and Bottom < Top.
func validComplex(r ComplexRect) bool {
	return r.Left < r.Right && r.Bottom < r.Top &&
		isFinite(r.Left) && isFinite(r.Right) && isFinite(r.Top) && isFinite(r.Bottom)
}
