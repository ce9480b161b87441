// Command bezier draws the outline of the greek letter q as a chain of
// cubic Bezier segments, either to a PNG file or in a window.
package main

import (
	"flag"
	"fmt"

	"github.com/gogpu/gfxlab"
	"github.com/gogpu/gfxlab/config"
	"github.com/gogpu/gfxlab/curve"
	"github.com/gogpu/gfxlab/internal/cli"
	"github.com/gogpu/gfxlab/render"
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

	draw := glyph(cfg.Bezier.Samples)
	if flags.Window || cfg.Bezier.Window {
		err = viewer.Run(draw,
			viewer.WithTitle("Bezier glyph"),
			viewer.WithSize(cfg.Bezier.Size, cfg.Bezier.Size))
	} else {
		log.Info(fmt.Sprintf("Generating %s file ...", cfg.Bezier.Output))
		err = save(draw, cfg.Bezier)
	}
	if err != nil {
		cli.Fatal(log, err)
	}
	log.Info("Done.")
}

func glyph(samples int) render.DrawFunc {
	pts := curve.Chain(curve.GlyphQ, samples)
	return render.StripFunc(render.NewSoftwareRenderer(), pts, gfxlab.Gray, gfxlab.White)
}

func save(draw render.DrawFunc, cfg config.Bezier) error {
	target := render.NewTarget(cfg.Size, cfg.Size)
	if err := draw(target, 0); err != nil {
		return err
	}
	return target.Pixmap().SavePNG(cfg.Output)
}
