//go:build window

// Package window provides a desktop shell built on Ebitengine. It needs cgo
// and a display, so it is only compiled with the "window" build tag.
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

const windowTitle = "Flappy Bird"

var (
	skyColor  = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	birdColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	pipeColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

func init() {
	registry.Register("window", func() registry.Shell { return Shell{} })
}

// Game adapts a flappy session to ebiten.Game. Every update is one fixed
// step of 1/TPS seconds.
type Game struct {
	ctx     context.Context
	session *flappy.Session
	width   int
	height  int
	dt      float64
	input   core.InputFrame
	paused  bool
}

// NewGame creates the ebiten game around session.
func NewGame(ctx context.Context, session *flappy.Session, tickRate int) *Game {
	if tickRate <= 0 {
		tickRate = 60
	}
	snap := session.Snapshot()
	return &Game{
		ctx:     ctx,
		session: session,
		width:   int(snap.Width),
		height:  int(snap.Height),
		dt:      1 / float64(tickRate),
		input:   core.NewInputFrame(),
	}
}

// Update reads the keyboard and steps the session.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	action := mapKeys(inpututil.IsKeyJustPressed, g.session.Over())
	switch action {
	case core.ActionQuit:
		return ebiten.Termination
	case core.ActionPause:
		g.paused = !g.paused
	case core.ActionFlap, core.ActionRestart:
		g.input.Set(action)
	}

	if g.paused {
		g.input.Clear()
		return nil
	}

	g.session.Step(g.input, g.dt)
	g.input.Clear()
	return nil
}

// Draw paints the sky, the pipes, the bird and the score text.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	snap := g.session.Snapshot()
	for _, p := range snap.Pipes {
		drawRect(screen, p.Top, pipeColor)
		drawRect(screen, p.Bottom, pipeColor)
	}

	b := snap.Bird
	vector.DrawFilledCircle(screen, float32(b.X+b.Radius), float32(b.Y+b.Radius), float32(b.Radius), birdColor, true)

	ebitenutil.DebugPrintAt(screen, statusText(snap), 10, 10)
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "Paused", g.width/2-18, g.height/2)
	}
}

// Layout keeps the logical screen at world size; ebiten scales the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func drawRect(screen *ebiten.Image, r core.Rect, c color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// statusText is the overlay line shown in the top-left corner.
func statusText(snap flappy.Snapshot) string {
	if snap.Over {
		return fmt.Sprintf("Game Over! Final Score: %d\nPress Space to Restart", snap.Score)
	}
	return fmt.Sprintf("Score: %d", snap.Score)
}

// mapKeys turns this frame's key presses into one action. Space restarts a
// finished round and flaps otherwise.
func mapKeys(justPressed func(ebiten.Key) bool, over bool) core.Action {
	switch {
	case justPressed(ebiten.KeyEscape), justPressed(ebiten.KeyQ):
		return core.ActionQuit
	case justPressed(ebiten.KeyP):
		return core.ActionPause
	case justPressed(ebiten.KeyR):
		return core.ActionRestart
	case justPressed(ebiten.KeySpace), justPressed(ebiten.KeyUp), justPressed(ebiten.KeyW):
		if over {
			return core.ActionRestart
		}
		return core.ActionFlap
	}
	return core.ActionNone
}

// Shell runs the game in a desktop window.
type Shell struct{}

// ID returns the registry identifier.
func (Shell) ID() string { return "window" }

// Title returns the human-readable name.
func (Shell) Title() string { return "Desktop window (Ebitengine)" }

// Run opens the window and blocks until it is closed or ctx is cancelled.
func (Shell) Run(ctx context.Context, opts registry.RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rt := opts.Runtime
	seed := rt.ResolveSeed()
	logger.Info("starting window shell", "seed", seed, "tps", rt.TickRate)

	session := flappy.NewSession(opts.Game, flappy.NewRand(seed), flappy.WithLogger(logger))
	game := NewGame(ctx, session, rt.TickRate)

	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(rt.TickRate)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
