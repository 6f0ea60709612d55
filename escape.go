// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mandel

import (
	"image/color"
	"math"
)

// MaxIterations is the default escape-time iteration bound.
const MaxIterations = 1000

// escapeRadius2 is the squared escape radius (|z| > 2 diverges).
const escapeRadius2 = 4.0

// bandCount is the number of repeating color bands in the palette.
const bandCount = 32

// CountIterations iterates z = z² + c for c = x0 + i·y0 starting at z = 0
// and returns the number of steps taken before |z|² exceeds 4, or
// MaxIterations if it never does.
func CountIterations(x0, y0 float64) int {
	return countIterations(x0, y0, MaxIterations)
}

// countIterations is the inner loop. It keeps x², y² from the previous step
// so each iteration costs three multiplications.
func countIterations(x0, y0 float64, maxIter int) int {
	var x, y, x2, y2 float64
	n := 0
	for x2+y2 <= escapeRadius2 && n < maxIter {
		y = (x+x)*y + y0
		x = x2 - y2 + x0
		x2 = x * x
		y2 = y * y
		n++
	}
	return n
}

// ColorFor maps an iteration count to a palette color.
//
// Points that never escaped (count == maxIter) are opaque black. Others
// cycle through bandCount bands: m = count % 32 gives (5m, 7m, 13m).
// Blue exceeds a byte for m > 19 and wraps modulo 256.
func ColorFor(count, maxIter int) color.RGBA {
	if count >= maxIter {
		return color.RGBA{A: 255}
	}
	m := count % bandCount
	return color.RGBA{
		R: uint8(m * 5),
		G: uint8(m * 7),
		B: uint8(m * 13),
		A: 255,
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
