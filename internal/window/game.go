// Package window shows the particle field in a desktop window.
package window

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/olivier-w/driftfield/internal/config"
	"github.com/olivier-w/driftfield/internal/particles"
)

// Game hosts a field in ebiten's loop: Update ticks, Draw renders, and a
// Layout with a new size rebuilds the pool.
type Game struct {
	ctx           context.Context
	field         *particles.Field
	surface       *imageSurface
	width, height int
}

func New(ctx context.Context, cfg config.Config) (*Game, error) {
	s := newImageSurface()
	f, err := particles.New(s, config.NewRand(cfg.Particles.Seed), cfg.Particles.FieldOptions())
	if err != nil {
		return nil, err
	}
	return &Game{ctx: ctx, field: f, surface: s}, nil
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.field.Initialize(g.field.Options().Count)
	}
	g.field.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	g.field.Render()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.field.Reset(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed, Esc/Q is pressed or
// ctx is cancelled.
func Run(ctx context.Context, cfg config.Config) error {
	g, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
