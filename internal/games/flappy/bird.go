package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player entity. Only its vertical motion is simulated; the
// horizontal position is fixed and the world scrolls past it.
type Bird struct {
	Y         float64 // Top of the bounding box
	VelocityY float64 // Positive = falling

	x       float64
	radius  float64
	gravity float64
	impulse float64
	floorY  float64
}

// NewBird creates a bird at the configured starting position, at rest.
func NewBird(cfg config.FlappyConfig) Bird {
	return Bird{
		Y:       cfg.Bird.Y,
		x:       cfg.Bird.X,
		radius:  cfg.Bird.Radius,
		gravity: cfg.Physics.Gravity,
		impulse: cfg.Physics.FlapImpulse,
		floorY:  cfg.World.FloorY,
	}
}

// X returns the fixed horizontal position of the bird's left edge.
func (b Bird) X() float64 {
	return b.x
}

// Radius returns the bird's radius.
func (b Bird) Radius() float64 {
	return b.radius
}

// FloorY returns the lowest allowed position.
func (b Bird) FloorY() float64 {
	return b.floorY
}

// Flap replaces the current velocity with the upward impulse.
func (b *Bird) Flap() {
	b.VelocityY = b.impulse
}

// Integrate advances the bird by dt seconds using explicit Euler
// integration, then clamps it to [0, floorY]. Landing on the floor stops the
// bird; hitting the ceiling only pins the position and keeps the velocity.
func (b *Bird) Integrate(dt float64) {
	b.VelocityY += b.gravity * dt
	b.Y += b.VelocityY * dt

	if b.Y > b.floorY {
		b.VelocityY = 0
	}
	b.Y = core.ClampF(b.Y, 0, b.floorY)
}

// Grounded reports whether the bird has reached the floor.
func (b Bird) Grounded() bool {
	return b.Y >= b.floorY
}

// Bounds returns the bird's axis-aligned collision box.
func (b Bird) Bounds() core.Rect {
	d := b.radius * 2
	return core.NewRect(b.x, b.Y, d, d)
}
