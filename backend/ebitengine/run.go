package ebitengine

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/touchui"
)

// RunConfig holds optional settings for Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Scale multiplies the window size relative to the canvas. Defaults to 1.
	Scale float64
	// ShowFPS draws FPS and TPS in the top-left corner.
	ShowFPS bool
}

// Game implements ebiten.Game around a touchui.Loop. Each Update samples
// input and runs the loop's queued jobs; Draw presents the canvas.
type Game struct {
	loop    *touchui.Loop
	canvas  *Canvas
	input   *Input
	showFPS bool
}

// NewGame wires loop, canvas and input together. in may be nil when input
// comes from somewhere else, such as a TestRunner.
func NewGame(loop *touchui.Loop, c *Canvas, in *Input, showFPS bool) *Game {
	return &Game{loop: loop, canvas: c, input: in, showFPS: showFPS}
}

func (g *Game) Update() error {
	if g.input != nil {
		g.input.Update()
	}
	if err := g.loop.Step(); err != nil {
		if errors.Is(err, touchui.ErrLoopStopped) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.img, nil)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	b := g.canvas.img.Bounds()
	return b.Dx(), b.Dy()
}

// Run opens a window sized to the canvas, starts loop in hosted mode and
// blocks until the window closes, ctx is done, or the loop fails.
//
//	loop.Input(in, touchui.DefaultGestureConfig())
//	err := ebitengine.Run(ctx, loop, canvas, in, ebitengine.RunConfig{Title: "SQUiXL"})
func Run(ctx context.Context, loop *touchui.Loop, c *Canvas, in *Input, cfg RunConfig) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := loop.Start(ctx); err != nil {
		return err
	}

	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	b := c.img.Bounds()
	ebiten.SetWindowSize(int(float64(b.Dx())*scale), int(float64(b.Dy())*scale))
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}

	err := ebiten.RunGame(NewGame(loop, c, in, cfg.ShowFPS))
	cancel()
	if werr := loop.Wait(); err == nil {
		err = werr
	}
	return err
}
