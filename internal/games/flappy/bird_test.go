package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

const epsilon = 1e-9

func TestBirdEulerIntegration(t *testing.T) {
	b := NewBird(config.DefaultFlappyConfig())

	expected := []struct{ v, y float64 }{
		{90, 309},
		{180, 327},
		{270, 354},
	}
	for i, want := range expected {
		b.Integrate(0.1)
		if math.Abs(b.VelocityY-want.v) > epsilon || math.Abs(b.Y-want.y) > epsilon {
			t.Fatalf("after tick %d: v=%v y=%v, expected v=%v y=%v", i+1, b.VelocityY, b.Y, want.v, want.y)
		}
	}
}

func TestBirdFlapOverridesVelocity(t *testing.T) {
	b := NewBird(config.DefaultFlappyConfig())
	b.VelocityY = 500

	b.Flap()

	if b.VelocityY != -350 {
		t.Errorf("Flap should set velocity to -350, got %v", b.VelocityY)
	}
}

func TestBirdFloorClampStopsBird(t *testing.T) {
	b := NewBird(config.DefaultFlappyConfig())
	b.Y = 570
	b.VelocityY = 400

	b.Integrate(0.1)

	if b.Y != 580 {
		t.Errorf("Y should clamp to floor 580, got %v", b.Y)
	}
	if b.VelocityY != 0 {
		t.Errorf("velocity should be zeroed on landing, got %v", b.VelocityY)
	}
	if !b.Grounded() {
		t.Error("bird on the floor should be grounded")
	}
}

func TestBirdCeilingClampKeepsVelocity(t *testing.T) {
	b := NewBird(config.DefaultFlappyConfig())
	b.Y = 5
	b.Flap()

	b.Integrate(0.1)

	if b.Y != 0 {
		t.Errorf("Y should clamp to ceiling 0, got %v", b.Y)
	}
	if math.Abs(b.VelocityY-(-260)) > epsilon {
		t.Errorf("ceiling must not stop the bird, velocity = %v, expected -260", b.VelocityY)
	}
	if b.Grounded() {
		t.Error("bird at the ceiling is not grounded")
	}
}

func TestBirdStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	b := NewBird(config.DefaultFlappyConfig())

	for i := 0; i < 5000; i++ {
		if rng.Intn(4) == 0 {
			b.Flap()
		}
		dt := rng.Float64() * 0.3
		b.Integrate(dt)

		if b.Y < 0 || b.Y > b.FloorY() {
			t.Fatalf("step %d (dt=%v): Y=%v out of [0, %v]", i, dt, b.Y, b.FloorY())
		}
	}
}

func TestBirdBounds(t *testing.T) {
	b := NewBird(config.DefaultFlappyConfig())
	r := b.Bounds()

	if r.X != 100 || r.Y != 300 || r.W != 40 || r.H != 40 {
		t.Errorf("Bounds() = %+v, expected {100 300 40 40}", r)
	}
}
