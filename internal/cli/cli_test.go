package cli

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gfxlab"
	"github.com/gogpu/gfxlab/config"
	"github.com/gogpu/gfxlab/render"
)

func TestRegister(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Register(fs, true)
	if err := fs.Parse([]string{"-config", "lab.yaml", "-window"}); err != nil {
		t.Fatal(err)
	}
	if f.Config != "lab.yaml" || !f.Window {
		t.Errorf("flags = %+v", f)
	}

	var g Flags
	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(discard{})
	g.Register(fs, false)
	if err := fs.Parse([]string{"-window"}); err == nil {
		t.Error("-window accepted without a viewer")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestSetupDefaults(t *testing.T) {
	cfg, l, err := Setup(Flags{})
	if err != nil {
		t.Fatal(err)
	}
	if l == nil || cfg.Filter.Input != "lena.raw" {
		t.Errorf("Setup() = %+v, %v", cfg, l)
	}
}

func TestSetupMissingConfig(t *testing.T) {
	_, l, err := Setup(Flags{Config: filepath.Join(t.TempDir(), "none.yaml")})
	if err == nil {
		t.Fatal("Setup() with a missing file succeeded")
	}
	if l == nil {
		t.Error("Setup() returned no logger for reporting the error")
	}
}

func TestWriteFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	draw := func(target *render.Target, _ float32) error {
		target.Clear(gfxlab.Green)
		return nil
	}

	n, err := WriteFrames(render.Frames(draw, render.WithFrameCount(3), render.WithSize(4, 4)), dir, "test")
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("wrote %d frames, want 3", n)
	}
	for i := 0; i < 3; i++ {
		if _, err := os.Stat(FramePath(dir, "test", i)); err != nil {
			t.Errorf("frame %d: %v", i, err)
		}
	}
	if got := filepath.Base(FramePath(dir, "x", 12)); got != "x_0012.png" {
		t.Errorf("FramePath = %q", got)
	}
}

func TestRenderFrames(t *testing.T) {
	cfg := config.Default().Scenes
	cfg.Dir = t.TempDir()
	cfg.Frames = 2
	cfg.Size = 8

	var times []float32
	draw := func(target *render.Target, tm float32) error {
		times = append(times, tm)
		return nil
	}
	n, err := RenderFrames(draw, "scene", cfg)
	if err != nil || n != 2 {
		t.Fatalf("RenderFrames() = %d, %v, want 2 frames", n, err)
	}
	if times[1] != float32(1/cfg.FPS) {
		t.Errorf("second frame time = %v, want %v", times[1], 1/cfg.FPS)
	}
}
