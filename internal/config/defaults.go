package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It matches the
// embedded defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: World{
			Width:  800,
			Height: 600,
			FloorY: 580,
		},
		Physics: Physics{
			Gravity:     900,
			FlapImpulse: -350,
		},
		Bird: Bird{
			X:      100,
			Y:      300,
			Radius: 20,
		},
		Pipes: Pipes{
			Width:         60,
			GapSize:       150,
			GapMin:        100,
			GapMax:        400,
			Speed:         200,
			SpawnInterval: 1.5,
		},
		Shell: Shell{
			TickRate:      60,
			MaxFrameDelta: 0.25,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}

// Runtime builds the shell runtime settings for a display of the given size.
func (c FlappyConfig) Runtime(screenW, screenH int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:       screenW,
		ScreenH:       screenH,
		TickRate:      c.Shell.TickRate,
		Seed:          seed,
		MaxFrameDelta: time.Duration(c.Shell.MaxFrameDelta * float64(time.Second)),
	}
}
