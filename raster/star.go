// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Star returns the six points of a closed star outline: five strokes in a
// size x size square, starting and ending at the top center.
//
// Two vertices lie at x == size or y == size, one past the last pixel of a
// size x size pixmap. Pixels there are clipped when plotted.
func Star(size int) []Point {
	return []Point{
		{X: size / 2, Y: 0},
		{X: 0, Y: size},
		{X: size, Y: size / 3},
		{X: 0, Y: size / 3},
		{X: size, Y: size},
		{X: size / 2, Y: 0},
	}
}
