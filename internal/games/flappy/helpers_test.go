package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// stubRand returns queued values in order, cycling when exhausted.
type stubRand struct {
	values []int
	next   int
}

func (r *stubRand) Intn(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func newTestSession(seed int64) *Session {
	return NewSession(config.DefaultFlappyConfig(), rand.New(rand.NewSource(seed)))
}

// hoverConfig has no gravity so the bird stays where it is put.
func hoverConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	return cfg
}
