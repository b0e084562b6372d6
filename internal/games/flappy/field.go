package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// RandSource supplies gap positions. *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// NewRand returns a deterministic RandSource for seed.
func NewRand(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}

// Report summarises what happened to the bird against the field this frame.
type Report struct {
	Collided    bool // The bird overlaps a barrier
	NewlyPassed int  // Pipes whose passed flag flipped this frame
}

// PipeField handles spawning, movement, and removal of pipes.
// Pipes are kept in spawn order, which is also right-to-left order.
type PipeField struct {
	pipes   []Pipe
	rng     RandSource
	cfg     config.Pipes
	worldW  float64
	worldH  float64
	timer   float64 // Seconds since the last spawn
	spawned int     // Pipes spawned since the last reset
}

// NewPipeField creates an empty field that draws gaps from rng.
func NewPipeField(cfg config.FlappyConfig, rng RandSource) *PipeField {
	return &PipeField{
		pipes:  make([]Pipe, 0, 8),
		rng:    rng,
		cfg:    cfg.Pipes,
		worldW: cfg.World.Width,
		worldH: cfg.World.Height,
	}
}

// Reset removes all pipes and restarts the spawn timer. The random source
// keeps its state so the next round gets fresh gaps.
func (f *PipeField) Reset() {
	f.pipes = f.pipes[:0]
	f.timer = 0
	f.spawned = 0
}

// Tick runs one full field update: Advance followed by Evaluate.
func (f *PipeField) Tick(dt float64, shape core.Rect, entityX float64) Report {
	f.Advance(dt)
	return f.Evaluate(shape, entityX)
}

// Advance spawns at most one pipe when the timer expires, moves every pipe
// left and drops the ones that left the field.
func (f *PipeField) Advance(dt float64) {
	f.timer += dt
	if f.timer >= f.cfg.SpawnInterval {
		f.spawn()
		// Overshoot is discarded rather than carried into the next interval
		f.timer = 0
	}

	for i := range f.pipes {
		f.pipes[i].Advance(dt, f.cfg.Speed)
	}

	kept := f.pipes[:0]
	for _, p := range f.pipes {
		if !p.OffScreen() {
			kept = append(kept, p)
		}
	}
	clear(f.pipes[len(kept):])
	f.pipes = kept
}

// Evaluate checks shape against every pipe in spawn order. Pass transitions
// are only recorded on frames without a collision, so a round's score always
// equals the number of pipes marked passed.
func (f *PipeField) Evaluate(shape core.Rect, entityX float64) Report {
	for _, p := range f.pipes {
		if p.CollidesWith(shape) {
			return Report{Collided: true}
		}
	}

	var report Report
	for i := range f.pipes {
		if f.pipes[i].MarkPassed(entityX) {
			report.NewlyPassed++
		}
	}
	return report
}

// spawn appends a pipe at the right edge with a random gap.
func (f *PipeField) spawn() {
	gapTop := f.cfg.GapMin
	if span := f.cfg.GapMax - f.cfg.GapMin; span > 0 {
		gapTop += f.rng.Intn(span)
	}

	f.pipes = append(f.pipes, NewPipe(f.worldW, float64(gapTop), f.cfg.GapSize, f.cfg.Width, f.worldH))
	f.spawned++
}

// Pipes returns the live pipes in spawn order. The slice is owned by the
// field and is only valid until the next Advance.
func (f *PipeField) Pipes() []Pipe {
	return f.pipes
}

// Len returns the number of live pipes.
func (f *PipeField) Len() int {
	return len(f.pipes)
}

// Timer returns the seconds accumulated towards the next spawn.
func (f *PipeField) Timer() float64 {
	return f.timer
}

// Spawned returns how many pipes were created since the last reset.
func (f *PipeField) Spawned() int {
	return f.spawned
}
