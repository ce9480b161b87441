// Command origin3d renders the coordinate axes and a spinning cube under an
// orbiting perspective camera.
//
// By default the animation is written as numbered PNG frames; -window
// shows it live instead.
package main

import (
	"flag"

	"github.com/gogpu/gfxlab/internal/cli"
	"github.com/gogpu/gfxlab/render"
	"github.com/gogpu/gfxlab/scene"
	"github.com/gogpu/gfxlab/viewer"
)

func main() {
	var flags cli.Flags
	flags.Register(flag.CommandLine, true)
	flag.Parse()

	cfg, log, err := cli.Setup(flags)
	if err != nil {
		cli.Fatal(log, err)
	}

	s := scene.NewOrigin3D()
	draw := render.SceneFunc(render.NewSoftwareRenderer(), s)
	if flags.Window || cfg.Scenes.Window {
		err = viewer.Run(draw,
			viewer.WithTitle("3D origin"),
			viewer.WithSize(cfg.Scenes.Size, cfg.Scenes.Size),
			viewer.WithTPS(cfg.Scenes.TPS()))
	} else {
		log.Info("Generating frames ...", "dir", cfg.Scenes.Dir, "frames", cfg.Scenes.Frames)
		_, err = cli.RenderFrames(draw, s.Name(), cfg.Scenes)
	}
	if err != nil {
		cli.Fatal(log, err)
	}
	log.Info("Done.")
}
