package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestFieldSpawnsOnInterval(t *testing.T) {
	f := NewPipeField(config.DefaultFlappyConfig(), &stubRand{values: []int{50}})

	f.Tick(1.0, core.Rect{}, 100)
	if f.Len() != 0 {
		t.Fatalf("no pipe expected before the interval, got %d", f.Len())
	}
	if f.Timer() != 1.0 {
		t.Errorf("Timer() = %v, expected 1.0", f.Timer())
	}

	f.Reset()
	f.Tick(1.5, core.Rect{}, 100)

	if f.Len() != 1 {
		t.Fatalf("exactly one pipe expected, got %d", f.Len())
	}
	if f.Timer() != 0 {
		t.Errorf("timer should reset to 0, got %v", f.Timer())
	}

	p := f.Pipes()[0]
	if p.GapTop != 150 {
		t.Errorf("GapTop = %v, expected 100+50", p.GapTop)
	}
	// Spawned at the right edge and moved in the same tick
	if p.X != 800-1.5*200 {
		t.Errorf("X = %v, expected %v", p.X, 800-1.5*200)
	}
}

func TestFieldDiscardsOvershoot(t *testing.T) {
	f := NewPipeField(config.DefaultFlappyConfig(), &stubRand{values: []int{0}})

	f.Advance(4.0)

	if f.Len() != 1 {
		t.Errorf("at most one spawn per tick, got %d pipes", f.Len())
	}
	if f.Timer() != 0 {
		t.Errorf("overshoot must not carry over, timer = %v", f.Timer())
	}
}

func TestFieldGapRange(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	f := NewPipeField(cfg, &stubRand{values: []int{0, 299, 300, 1234}})

	expected := []float64{100, 399, 100, 134}
	for i, want := range expected {
		f.Advance(cfg.Pipes.SpawnInterval)
		got := f.Pipes()[f.Len()-1].GapTop
		if got != want {
			t.Errorf("spawn %d: GapTop = %v, expected %v", i, got, want)
		}
		if got < float64(cfg.Pipes.GapMin) || got >= float64(cfg.Pipes.GapMax) {
			t.Errorf("spawn %d: GapTop %v outside [%d, %d)", i, got, cfg.Pipes.GapMin, cfg.Pipes.GapMax)
		}
	}
}

func TestFieldPrunePreservesOrder(t *testing.T) {
	values := make([]int, 40)
	for i := range values {
		values[i] = i
	}
	f := NewPipeField(config.DefaultFlappyConfig(), &stubRand{values: values})

	pruned := 0
	for tick := 0; tick < 60; tick++ {
		before := f.Spawned()
		lenBefore := f.Len()
		f.Advance(0.5)
		spawnedNow := f.Spawned() - before
		pruned += lenBefore + spawnedNow - f.Len()

		pipes := f.Pipes()
		for i, p := range pipes {
			// Gap values were issued in spawn order, so survivors must be
			// the contiguous run starting right after the pruned ones.
			if want := float64(100 + pruned + i); p.GapTop != want {
				t.Fatalf("tick %d: pipe %d GapTop = %v, expected %v", tick, i, p.GapTop, want)
			}
			if i > 0 && pipes[i-1].X >= p.X {
				t.Fatalf("tick %d: older pipe %d is not left of pipe %d", tick, i-1, i)
			}
			if p.OffScreen() {
				t.Fatalf("tick %d: off-screen pipe survived", tick)
			}
		}
	}

	if pruned == 0 {
		t.Error("expected some pipes to leave the field")
	}
}

func TestFieldEvaluatePasses(t *testing.T) {
	f := NewPipeField(config.DefaultFlappyConfig(), &stubRand{values: []int{0}})
	f.pipes = append(f.pipes,
		NewPipe(20, 200, 150, 60, 600),  // Trailing edge 80, behind the bird
		NewPipe(400, 200, 150, 60, 600), // Ahead
	)
	bird := core.NewRect(100, 250, 40, 40)

	report := f.Evaluate(bird, 100)
	if report.Collided || report.NewlyPassed != 1 {
		t.Fatalf("report = %+v, expected one pass and no collision", report)
	}

	report = f.Evaluate(bird, 100)
	if report.NewlyPassed != 0 {
		t.Errorf("a pipe must only be counted once, got %d", report.NewlyPassed)
	}
}

func TestFieldEvaluateCollisionSuppressesPasses(t *testing.T) {
	f := NewPipeField(config.DefaultFlappyConfig(), &stubRand{values: []int{0}})
	f.pipes = append(f.pipes,
		NewPipe(20, 200, 150, 60, 600),  // Passable
		NewPipe(110, 400, 150, 60, 600), // Top barrier covers the bird
	)

	report := f.Evaluate(core.NewRect(100, 250, 40, 40), 100)

	if !report.Collided {
		t.Fatal("expected a collision")
	}
	if report.NewlyPassed != 0 || f.pipes[0].Passed {
		t.Error("no pass may be recorded on a collision frame")
	}
}

func TestFieldReset(t *testing.T) {
	f := NewPipeField(config.DefaultFlappyConfig(), &stubRand{values: []int{0}})
	f.Advance(1.5)
	f.Advance(1.0)

	f.Reset()

	if f.Len() != 0 || f.Timer() != 0 || f.Spawned() != 0 {
		t.Errorf("Reset left state behind: len=%d timer=%v spawned=%d", f.Len(), f.Timer(), f.Spawned())
	}
}
