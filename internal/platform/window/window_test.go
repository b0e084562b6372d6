//go:build window

package window

import (
	"context"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, want := range keys {
			if k == want {
				return true
			}
		}
		return false
	}
}

func TestMapKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		over bool
		want core.Action
	}{
		{"nothing", nil, false, core.ActionNone},
		{"space flaps", []ebiten.Key{ebiten.KeySpace}, false, core.ActionFlap},
		{"space restarts when over", []ebiten.Key{ebiten.KeySpace}, true, core.ActionRestart},
		{"r restarts", []ebiten.Key{ebiten.KeyR}, false, core.ActionRestart},
		{"p pauses", []ebiten.Key{ebiten.KeyP}, false, core.ActionPause},
		{"escape quits", []ebiten.Key{ebiten.KeyEscape}, false, core.ActionQuit},
		{"quit wins over flap", []ebiten.Key{ebiten.KeySpace, ebiten.KeyQ}, false, core.ActionQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapKeys(pressed(tc.keys...), tc.over); got != tc.want {
				t.Errorf("mapKeys = %s, expected %s", got, tc.want)
			}
		})
	}
}

func TestNewGameUsesWorldSize(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	g := NewGame(context.Background(), flappy.NewSession(cfg, flappy.NewRand(1)), 60)

	w, h := g.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d, expected 800x600", w, h)
	}
	if g.dt != 1.0/60 {
		t.Errorf("dt = %v, expected 1/60", g.dt)
	}
}

func TestStatusText(t *testing.T) {
	snap := flappy.Snapshot{Score: 3}
	if got := statusText(snap); got != "Score: 3" {
		t.Errorf("statusText = %q", got)
	}

	snap.Over = true
	got := statusText(snap)
	if !strings.HasPrefix(got, "Game Over! Final Score: 3") || !strings.Contains(got, "Press Space to Restart") {
		t.Errorf("statusText = %q", got)
	}
}

func TestUpdateStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := NewGame(ctx, flappy.NewSession(config.DefaultFlappyConfig(), flappy.NewRand(1)), 60)

	cancel()
	if err := g.Update(); err != ebiten.Termination {
		t.Errorf("Update after cancel = %v, expected ebiten.Termination", err)
	}
}
