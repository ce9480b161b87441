// Command filter applies the split grayscale/brightness filter to a raw
// 512x512 RGB image: the left half becomes gray, the right half brighter.
//
// Usage:
//
//	filter [-config gfxlab.yaml]
package main

import (
	"flag"
	"fmt"

	"github.com/gogpu/gfxlab/config"
	"github.com/gogpu/gfxlab/filter"
	"github.com/gogpu/gfxlab/internal/cli"
	"github.com/gogpu/gfxlab/rawrgb"
)

func main() {
	var flags cli.Flags
	flags.Register(flag.CommandLine, false)
	flag.Parse()

	cfg, log, err := cli.Setup(flags)
	if err != nil {
		cli.Fatal(log, err)
	}

	log.Info(fmt.Sprintf("Generating %s file ...", cfg.Filter.Output))
	if err := run(cfg.Filter); err != nil {
		cli.Fatal(log, err)
	}
	log.Info("Done.")
}

func run(cfg config.Filter) error {
	img, err := rawrgb.Load(cfg.Input, cfg.Size, cfg.Size)
	if err != nil {
		return err
	}

	split := filter.NewSplit()
	split.Right = filter.BrightnessOp{Factor: cfg.Brightness}
	split.Apply(img)

	if err := img.Save(cfg.Output); err != nil {
		return err
	}
	if cfg.Preview != "" {
		return img.ToPixmap().SavePNG(cfg.Preview)
	}
	return nil
}
