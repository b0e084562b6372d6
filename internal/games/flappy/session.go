// Package flappy implements a Flappy Bird-style game.
// The player keeps a falling bird airborne and steers it through the gaps
// of pipes that scroll in from the right.
package flappy

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Status is the session's state machine position.
type Status int

const (
	StatusPlaying Status = iota
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Session owns one bird and one pipe field and runs the frame update.
// It is not safe for concurrent use; shells drive it from their frame loop.
type Session struct {
	cfg    config.FlappyConfig
	bird   Bird
	field  *PipeField
	score  int
	status Status
	ticks  int // Ticks since the current round started
	rounds int
	logger *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for round start/end messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a session that is ready to play.
func NewSession(cfg config.FlappyConfig, rng RandSource, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		field:  NewPipeField(cfg, rng),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Start()
	return s
}

// Start begins a new round from any state: score 0, no pipes, bird back at
// its starting position.
func (s *Session) Start() {
	s.bird = NewBird(s.cfg)
	s.field.Reset()
	s.score = 0
	s.ticks = 0
	s.status = StatusPlaying
	s.rounds++

	s.logger.Info("game started", "round", s.rounds)
}

// Flap gives the bird an upward impulse. Ignored once the round is over.
func (s *Session) Flap() {
	if s.status != StatusPlaying {
		return
	}
	s.bird.Flap()
}

// Restart starts a new round, but only after the current one has ended.
func (s *Session) Restart() {
	if s.status != StatusGameOver {
		return
	}
	s.Start()
}

// Tick advances the round by dt seconds. A finished round stays frozen.
// Negative or non-finite dt is rejected without touching the state.
func (s *Session) Tick(dt float64) {
	if s.status != StatusPlaying {
		return
	}
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		s.logger.Warn("rejected frame delta", "dt", dt)
		return
	}

	s.ticks++
	s.bird.Integrate(dt)
	s.field.Advance(dt)

	if s.bird.Grounded() {
		s.end("floor")
		return
	}

	report := s.field.Evaluate(s.bird.Bounds(), s.bird.X())
	if report.Collided {
		s.end("pipe")
		return
	}
	s.score += report.NewlyPassed
}

// Step applies the frame's input and then ticks. Flap is handled before
// restart, so the key that restarts a round does not also flap in it.
func (s *Session) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionFlap) {
		s.Flap()
	}
	if in.Has(core.ActionRestart) {
		s.Restart()
	}
	s.Tick(dt)

	return core.StepResult{State: s.State()}
}

func (s *Session) end(cause string) {
	s.status = StatusGameOver
	s.logger.Info("game over", "score", s.score, "cause", cause, "ticks", s.ticks)
}

// Status returns the current state machine position.
func (s *Session) Status() Status {
	return s.status
}

// Over reports whether the round has ended.
func (s *Session) Over() bool {
	return s.status == StatusGameOver
}

// Score returns the number of pipes cleared this round.
func (s *Session) Score() int {
	return s.score
}

// Ticks returns the number of accepted ticks this round.
func (s *Session) Ticks() int {
	return s.ticks
}

// Spawned returns how many pipes appeared this round.
func (s *Session) Spawned() int {
	return s.field.Spawned()
}

// State returns the coarse game state for shells.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.Over(),
	}
}
