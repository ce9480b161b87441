// Package cli holds the start-up and output plumbing shared by the
// gfxlab commands.
package cli

import (
	"flag"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gfxlab"
	"github.com/gogpu/gfxlab/config"
	"github.com/gogpu/gfxlab/render"
)

// Flags are the command line flags common to every command.
type Flags struct {
	Config string
	Window bool
}

// Register adds the common flags to fs. withWindow adds -window for
// commands that can open a viewer.
func (f *Flags) Register(fs *flag.FlagSet, withWindow bool) {
	fs.StringVar(&f.Config, "config", "", "YAML configuration `file` (defaults are built in)")
	if withWindow {
		fs.BoolVar(&f.Window, "window", false, "show frames in a window instead of writing files")
	}
}

// Setup loads the configuration named by f and installs the command
// logger. The logger is returned so commands can log before exiting.
func Setup(f Flags) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, NewLogger(slog.LevelInfo), err
	}
	lvl, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, NewLogger(slog.LevelInfo), err
	}
	return cfg, NewLogger(lvl), nil
}

// NewLogger creates a text logger on stderr and makes it the library and
// process default.
func NewLogger(level slog.Level) *slog.Logger {
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gfxlab.SetLogger(l)
	slog.SetDefault(l)
	return l
}

// Fatal logs err and exits with status 1.
func Fatal(l *slog.Logger, err error) {
	l.Error(err.Error())
	os.Exit(1)
}

// FramePath returns the file name of frame i in dir.
func FramePath(dir, name string, i int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%04d.png", name, i))
}

// WriteFrames saves every frame as a numbered PNG in dir, creating dir if
// needed, and returns the number of files written.
func WriteFrames(frames iter.Seq2[int, *gfxlab.Pixmap], dir, name string) (int, error) {
	if err := os.MkdirAll(filepath.Clean(dir), 0o750); err != nil {
		return 0, fmt.Errorf("cli: create frame dir: %w", err)
	}
	n := 0
	for i, pm := range frames {
		path := FramePath(dir, name, i)
		if err := pm.SavePNG(path); err != nil {
			return n, fmt.Errorf("cli: frame %d: %w", i, err)
		}
		gfxlab.Logger().Debug("cli: frame written", "path", path)
		n++
	}
	return n, nil
}

// RenderFrames runs draw headless with the scene settings of cfg and
// writes the frames to cfg.Dir.
func RenderFrames(draw render.DrawFunc, name string, cfg config.Scenes) (int, error) {
	frames := render.Frames(draw,
		render.WithFrameCount(cfg.Frames),
		render.WithFPS(cfg.FPS),
		render.WithSize(cfg.Size, cfg.Size))
	return WriteFrames(frames, cfg.Dir, name)
}
