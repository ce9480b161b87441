// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster converts line segments into discrete pixel coordinates.
//
// Lines are rasterized with Bresenham's algorithm using integer arithmetic
// only: the dominant axis advances one pixel per step while an error term
// decides when the minor axis follows. Every slope octant is handled by
// sign-aware steps on both axes.
//
// Segments are half-open: the start pixel is emitted, the end pixel is not.
// Consecutive segments of a polyline therefore share their joints without
// plotting them twice.
package raster
