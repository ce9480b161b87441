// Package viewer shows animated frames in a desktop window.
//
// The window runs a fixed-step poll loop: every tick advances the frame
// time by 1/TPS seconds and asks a render.DrawFunc for the next frame,
// which is uploaded to the screen as-is. Escape closes the window.
package viewer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/gfxlab"
	"github.com/gogpu/gfxlab/render"
)

// Default window settings.
const (
	DefaultTitle = "gfxlab"
	DefaultSize  = 512
	DefaultTPS   = 60
)

// Option configures a window.
type Option func(*options)

type options struct {
	title         string
	width, height int
	scale         int
	tps           int
}

func defaultOptions() options {
	return options{
		title:  DefaultTitle,
		width:  DefaultSize,
		height: DefaultSize,
		scale:  1,
		tps:    DefaultTPS,
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithSize sets the framebuffer size in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithScale sets the initial window zoom factor.
func WithScale(scale int) Option {
	return func(o *options) {
		if scale > 0 {
			o.scale = scale
		}
	}
}

// WithTPS sets the number of ticks (frames) per second.
func WithTPS(tps int) Option {
	return func(o *options) {
		if tps > 0 {
			o.tps = tps
		}
	}
}

// Game adapts a DrawFunc to ebiten's game loop.
type Game struct {
	draw   render.DrawFunc
	target *render.Target
	img    *ebiten.Image
	tps    float64
	t      float32
	frame  int
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a game that renders draw into a width x height target
// and advances time by 1/tps per tick.
func NewGame(draw render.DrawFunc, width, height, tps int) *Game {
	return &Game{
		draw:   draw,
		target: render.NewTarget(width, height),
		tps:    float64(tps),
	}
}

// Time returns the frame time of the next Draw in seconds.
func (g *Game) Time() float32 { return g.t }

// Update advances the frame time. It ends the game on Escape.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.advance()
	return nil
}

// advance moves to the next fixed time step.
func (g *Game) advance() {
	g.t = render.FrameTime(g.frame, g.tps)
	g.frame++
}

// Draw renders the current frame and copies it to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.draw(g.target, g.t); err != nil {
		gfxlab.Logger().Warn("viewer: draw failed", "frame", g.frame, "error", err)
		return
	}
	pm := g.target.Pixmap()
	if g.img == nil {
		g.img = ebiten.NewImage(pm.Width(), pm.Height())
	}
	g.img.WritePixels(pm.Data())
	screen.DrawImage(g.img, nil)
}

// Layout keeps the logical screen at the framebuffer size; ebiten scales it
// to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.target.Width(), g.target.Height()
}

// Run opens a window and shows frames produced by draw until the window is
// closed. It must be called from the main goroutine.
func Run(draw render.DrawFunc, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := NewGame(draw, o.width, o.height, o.tps)
	ebiten.SetWindowTitle(o.title)
	ebiten.SetWindowSize(o.width*o.scale, o.height*o.scale)
	ebiten.SetTPS(o.tps)

	gfxlab.Logger().Info("viewer: window open", "title", o.title, "width", o.width, "height", o.height, "tps", o.tps)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("viewer: run: %w", err)
	}
	return nil
}
