package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Pipe is a vertical obstacle made of a top and a bottom barrier with a gap
// between them.
type Pipe struct {
	X           float64 // Horizontal position (left edge)
	GapTop      float64 // Y where the gap starts
	GapSize     float64 // Height of the passable gap
	Width       float64
	FieldHeight float64
	Passed      bool // Set once the bird is past the trailing edge
}

// NewPipe creates an unpassed pipe.
func NewPipe(x, gapTop, gapSize, width, fieldHeight float64) Pipe {
	return Pipe{
		X:           x,
		GapTop:      gapTop,
		GapSize:     gapSize,
		Width:       width,
		FieldHeight: fieldHeight,
	}
}

// TrailingEdge returns the x-coordinate of the pipe's right edge.
func (p Pipe) TrailingEdge() float64 {
	return p.X + p.Width
}

// TopRect returns the barrier spanning [0, GapTop].
func (p Pipe) TopRect() core.Rect {
	return core.NewRect(p.X, 0, p.Width, p.GapTop)
}

// BottomRect returns the barrier spanning [GapTop+GapSize, FieldHeight].
func (p Pipe) BottomRect() core.Rect {
	bottomY := p.GapTop + p.GapSize
	return core.NewRect(p.X, bottomY, p.Width, p.FieldHeight-bottomY)
}

// Advance moves the pipe left by speed*dt.
func (p *Pipe) Advance(dt, speed float64) {
	p.X -= speed * dt
}

// OffScreen reports whether the pipe has fully left the field.
func (p Pipe) OffScreen() bool {
	return p.TrailingEdge() < 0
}

// CollidesWith reports whether r overlaps either barrier.
func (p Pipe) CollidesWith(r core.Rect) bool {
	return r.Intersects(p.TopRect()) || r.Intersects(p.BottomRect())
}

// MarkPassed flags the pipe as passed once its trailing edge is left of
// entityX. It returns true only for the call that makes the transition.
func (p *Pipe) MarkPassed(entityX float64) bool {
	if p.Passed || p.TrailingEdge() >= entityX {
		return false
	}
	p.Passed = true
	return true
}
