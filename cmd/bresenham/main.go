// Command bresenham draws a star outline of five strokes with the Bresenham
// line algorithm and saves it as a bitmap. The outline touches the right
// and bottom edges, where pixels past the bitmap are clipped.
package main

import (
	"flag"
	"fmt"

	"github.com/gogpu/gfxlab"
	"github.com/gogpu/gfxlab/config"
	"github.com/gogpu/gfxlab/internal/cli"
	"github.com/gogpu/gfxlab/raster"
)

func main() {
	var flags cli.Flags
	flags.Register(flag.CommandLine, false)
	flag.Parse()

	cfg, log, err := cli.Setup(flags)
	if err != nil {
		cli.Fatal(log, err)
	}

	log.Info(fmt.Sprintf("Generating %s file ...", cfg.Bresenham.Output))
	if err := run(cfg.Bresenham); err != nil {
		cli.Fatal(log, err)
	}
	log.Info("Done.")
}

func run(cfg config.Bresenham) error {
	pm := gfxlab.NewPixmap(cfg.Size, cfg.Size)
	raster.DrawPolyline(pm, raster.Star(cfg.Size), gfxlab.White)
	return pm.SaveBMP(cfg.Output)
}
