package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// BirdView is the render-facing part of the bird.
type BirdView struct {
	X, Y      float64 // Top-left of the bounding box
	Radius    float64
	VelocityY float64
	Bounds    core.Rect
}

// CenterY returns the vertical center of the bird.
func (b BirdView) CenterY() float64 {
	_, cy := b.Bounds.Center()
	return cy
}

// PipeView holds both barrier rectangles of one pipe.
type PipeView struct {
	Top    core.Rect
	Bottom core.Rect
	Passed bool
}

// GapCenter returns the vertical middle of the gap.
func (p PipeView) GapCenter() float64 {
	return (p.Top.Bottom() + p.Bottom.Y) / 2
}

// Snapshot is an immutable copy of everything a shell needs to draw a frame.
type Snapshot struct {
	Bird   BirdView
	Pipes  []PipeView // Spawn order
	Score  int
	Status Status
	Over   bool
	Width  float64 // World width
	Height float64 // World height
	FloorY float64
	Ticks  int
}

// Snapshot captures the current frame. The result shares no memory with the
// session.
func (s *Session) Snapshot() Snapshot {
	pipes := s.field.Pipes()
	views := make([]PipeView, len(pipes))
	for i, p := range pipes {
		views[i] = PipeView{
			Top:    p.TopRect(),
			Bottom: p.BottomRect(),
			Passed: p.Passed,
		}
	}

	return Snapshot{
		Bird: BirdView{
			X:         s.bird.X(),
			Y:         s.bird.Y,
			Radius:    s.bird.Radius(),
			VelocityY: s.bird.VelocityY,
			Bounds:    s.bird.Bounds(),
		},
		Pipes:  views,
		Score:  s.score,
		Status: s.status,
		Over:   s.Over(),
		Width:  s.cfg.World.Width,
		Height: s.cfg.World.Height,
		FloorY: s.cfg.World.FloorY,
		Ticks:  s.ticks,
	}
}
