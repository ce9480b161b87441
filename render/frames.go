// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"iter"

	"github.com/gogpu/gfxlab"
)

// Default frame loop settings.
const (
	DefaultSize       = 512
	DefaultFrameCount = 60
	DefaultFPS        = 30.0
)

// FrameOption configures a headless frame loop.
//
// Example:
//
//	frames := render.Frames(draw, render.WithFrameCount(120), render.WithFPS(60))
type FrameOption func(*frameOptions)

// frameOptions holds optional configuration for Frames.
type frameOptions struct {
	width, height int
	count         int
	fps           float64
}

// defaultFrameOptions returns the default frame loop options.
func defaultFrameOptions() frameOptions {
	return frameOptions{
		width:  DefaultSize,
		height: DefaultSize,
		count:  DefaultFrameCount,
		fps:    DefaultFPS,
	}
}

// WithSize sets the frame size in pixels.
func WithSize(width, height int) FrameOption {
	return func(o *frameOptions) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithFrameCount sets how many frames are produced.
func WithFrameCount(n int) FrameOption {
	return func(o *frameOptions) {
		if n >= 0 {
			o.count = n
		}
	}
}

// WithFPS sets the frame rate used to derive each frame's time.
func WithFPS(fps float64) FrameOption {
	return func(o *frameOptions) {
		if fps > 0 {
			o.fps = fps
		}
	}
}

// FrameTime returns the time in seconds of frame i at the given rate.
func FrameTime(i int, fps float64) float32 {
	return float32(float64(i) / fps)
}

// Frames runs draw for a fixed number of frames at a fixed time step and
// yields each frame's index and pixmap. The pixmap is reused: it is only
// valid until the next iteration.
//
// A draw error stops the loop; it is logged and no further frames are
// yielded.
func Frames(draw DrawFunc, opts ...FrameOption) iter.Seq2[int, *gfxlab.Pixmap] {
	o := defaultFrameOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return func(yield func(int, *gfxlab.Pixmap) bool) {
		target := NewTarget(o.width, o.height)
		for i := 0; i < o.count; i++ {
			t := FrameTime(i, o.fps)
			if err := draw(target, t); err != nil {
				gfxlab.Logger().Warn("render: frame failed", "frame", i, "error", err)
				return
			}
			gfxlab.Logger().Debug("render: frame", "frame", i, "time", t)
			if !yield(i, target.Pixmap()) {
				return
			}
		}
	}
}
