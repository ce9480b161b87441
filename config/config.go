// Package config loads the settings shared by the gfxlab commands.
//
// Every field has a default matching the built-in exercise paths, so a
// command run without a configuration file behaves exactly as before.
// A YAML file only needs the keys it overrides:
//
//	filter:
//	  input: photos/lena.raw
//	scenes:
//	  frames: 120
//	  window: true
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by validation errors.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the settings of every command.
type Config struct {
	Filter    Filter    `yaml:"filter"`
	Bresenham Bresenham `yaml:"bresenham"`
	Bezier    Bezier    `yaml:"bezier"`
	Scenes    Scenes    `yaml:"scenes"`
	Log       Log       `yaml:"log"`
}

// Filter configures the raw image filter.
type Filter struct {
	Input      string  `yaml:"input"`
	Output     string  `yaml:"output"`
	Size       int     `yaml:"size"`
	Brightness float64 `yaml:"brightness"`
	Preview    string  `yaml:"preview"` // optional PNG of the result
}

// Bresenham configures the star line drawing.
type Bresenham struct {
	Output string `yaml:"output"`
	Size   int    `yaml:"size"`
}

// Bezier configures the glyph curve drawing.
type Bezier struct {
	Output  string `yaml:"output"`
	Size    int    `yaml:"size"`
	Samples int    `yaml:"samples"`
	Window  bool   `yaml:"window"`
}

// Scenes configures the animated scene commands.
type Scenes struct {
	Frames int     `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
	Size   int     `yaml:"size"`
	Dir    string  `yaml:"dir"`
	Window bool    `yaml:"window"`
}

// TPS returns the frame rate rounded to whole ticks per second, the unit
// the window loop runs in.
func (s Scenes) TPS() int {
	return max(1, int(math.Round(s.FPS)))
}

// Log configures the command logger.
type Log struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Filter: Filter{
			Input:      "lena.raw",
			Output:     "result.raw",
			Size:       512,
			Brightness: 1.5,
		},
		Bresenham: Bresenham{
			Output: "task2_bresenham.bmp",
			Size:   512,
		},
		Bezier: Bezier{
			Output:  "task3_bezier.png",
			Size:    512,
			Samples: 15,
		},
		Scenes: Scenes{
			Frames: 60,
			FPS:    30,
			Size:   512,
			Dir:    "frames",
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path and overlays it on the defaults. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data over the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	switch {
	case c.Filter.Size <= 0:
		return fmt.Errorf("%w: filter.size %d", ErrInvalid, c.Filter.Size)
	case c.Filter.Brightness < 0:
		return fmt.Errorf("%w: filter.brightness %v", ErrInvalid, c.Filter.Brightness)
	case c.Bresenham.Size <= 0:
		return fmt.Errorf("%w: bresenham.size %d", ErrInvalid, c.Bresenham.Size)
	case c.Bezier.Size <= 0:
		return fmt.Errorf("%w: bezier.size %d", ErrInvalid, c.Bezier.Size)
	case c.Bezier.Samples < 1:
		return fmt.Errorf("%w: bezier.samples %d", ErrInvalid, c.Bezier.Samples)
	case c.Scenes.Frames < 0:
		return fmt.Errorf("%w: scenes.frames %d", ErrInvalid, c.Scenes.Frames)
	case c.Scenes.FPS < 1:
		return fmt.Errorf("%w: scenes.fps %v", ErrInvalid, c.Scenes.FPS)
	case c.Scenes.Size <= 0:
		return fmt.Errorf("%w: scenes.size %d", ErrInvalid, c.Scenes.Size)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}
