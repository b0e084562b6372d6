// Package config provides YAML-based configuration loading and validation
// for the game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// FlappyConfig contains all tunable constants of the game.
type FlappyConfig struct {
	World   World   `yaml:"world"`
	Physics Physics `yaml:"physics"`
	Bird    Bird    `yaml:"bird"`
	Pipes   Pipes   `yaml:"pipes"`
	Shell   Shell   `yaml:"shell"`
}

// World defines the playfield in world units.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FloorY float64 `yaml:"floor_y"` // Lowest bird position; touching it ends the round
}

// Physics defines the bird's vertical motion, in units per second.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse"` // Negative = up
}

// Bird defines the player entity's fixed parameters.
type Bird struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"` // Initial vertical position
	Radius float64 `yaml:"radius"`
}

// Pipes defines obstacle geometry and timing.
type Pipes struct {
	Width         float64 `yaml:"width"`
	GapSize       float64 `yaml:"gap_size"`
	GapMin        int     `yaml:"gap_min"` // Inclusive lower bound of the gap top
	GapMax        int     `yaml:"gap_max"` // Exclusive upper bound of the gap top
	Speed         float64 `yaml:"speed"`
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
}

// Shell defines presentation-side settings.
type Shell struct {
	TickRate      int     `yaml:"tick_rate"`
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // Seconds
}

// Validate checks that the configuration describes a playable field.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
		}
	}

	check(c.World.Width > 0, "world.width must be positive, got %v", c.World.Width)
	check(c.World.Height > 0, "world.height must be positive, got %v", c.World.Height)
	check(c.World.FloorY > 0 && c.World.FloorY <= c.World.Height,
		"world.floor_y must be in (0, %v], got %v", c.World.Height, c.World.FloorY)

	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative, got %v", c.Physics.Gravity)
	check(c.Physics.FlapImpulse < 0, "physics.flap_impulse must be negative (upward), got %v", c.Physics.FlapImpulse)

	check(c.Bird.Radius > 0, "bird.radius must be positive, got %v", c.Bird.Radius)
	check(c.Bird.X >= 0 && c.Bird.X < c.World.Width, "bird.x must be inside the world, got %v", c.Bird.X)
	check(c.Bird.Y >= 0 && c.Bird.Y < c.World.FloorY, "bird.y must be above the floor, got %v", c.Bird.Y)

	check(c.Pipes.Width > 0, "pipes.width must be positive, got %v", c.Pipes.Width)
	check(c.Pipes.GapSize > 0, "pipes.gap_size must be positive, got %v", c.Pipes.GapSize)
	check(c.Pipes.GapMin >= 0, "pipes.gap_min must not be negative, got %d", c.Pipes.GapMin)
	check(c.Pipes.GapMax > c.Pipes.GapMin, "pipes.gap_max (%d) must exceed gap_min (%d)", c.Pipes.GapMax, c.Pipes.GapMin)
	check(float64(c.Pipes.GapMax-1)+c.Pipes.GapSize <= c.World.Height,
		"pipes.gap_max + gap_size must fit in world.height (%v)", c.World.Height)
	check(c.Pipes.Speed > 0, "pipes.speed must be positive, got %v", c.Pipes.Speed)
	check(c.Pipes.SpawnInterval > 0, "pipes.spawn_interval must be positive, got %v", c.Pipes.SpawnInterval)

	check(c.Shell.TickRate > 0, "shell.tick_rate must be positive, got %d", c.Shell.TickRate)
	check(c.Shell.MaxFrameDelta >= 0, "shell.max_frame_delta must not be negative, got %v", c.Shell.MaxFrameDelta)

	return errors.Join(errs...)
}
