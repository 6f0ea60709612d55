// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

// BandHeight is the default number of rows per band.
const BandHeight = 16

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// Bands splits height rows into consecutive bands of at most rows rows.
// The last band may be shorter. A non-positive rows uses BandHeight.
func Bands(height, rows int) []Band {
	if height <= 0 {
		return nil
	}
	if rows <= 0 {
		rows = BandHeight
	}
	out := make([]Band, 0, (height+rows-1)/rows)
	for y := 0; y < height; y += rows {
		end := min(y+rows, height)
		out = append(out, Band{Y0: y, Y1: end})
	}
	return out
}
