package tui

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// helpRows is the number of terminal rows reserved below the playfield.
const helpRows = 1

func init() {
	registry.Register("tui", func() registry.Shell { return Shell{} })
}

// Model is the Bubble Tea model that drives a flappy session.
type Model struct {
	session    *flappy.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	lastTick   time.Time // Zero until the first tick after start or unpause
	paused     bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model around session.
func NewModel(session *flappy.Session, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 0)),
		config:     cfg,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues actions for the next tick. Quit and pause are handled by
// the shell itself and never reach the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg, m.session.Over()); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
		m.lastTick = time.Time{}
		m.logger.Debug("pause toggled", "paused", m.paused)
	case core.ActionFlap, core.ActionRestart:
		if !m.paused {
			m.inputFrame.Set(action)
		}
	}

	return m, nil
}

// handleResize keeps the playfield filling the terminal. The world has a
// fixed size, so only the projection changes and the round goes on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 0))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick measures the frame time and steps the session.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	var dt float64
	if !m.lastTick.IsZero() {
		dt = m.config.FrameDelta(now.Sub(m.lastTick))
	}
	m.lastTick = now

	m.session.Step(m.inputFrame, dt)
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	flappy.Render(m.screen, m.session.Snapshot())
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ", core.ColorBrightYellow)
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	if m.paused {
		b.WriteString(pausedStyle.Render("paused "))
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Shell runs the game in the terminal.
type Shell struct{}

// ID returns the registry identifier.
func (Shell) ID() string { return "tui" }

// Title returns the human-readable name.
func (Shell) Title() string { return "Terminal (Bubble Tea)" }

// Run starts the Bubble Tea program and blocks until the player quits or ctx
// is cancelled.
func (Shell) Run(ctx context.Context, opts registry.RunOptions) error {
	rt := opts.Runtime
	seed := rt.ResolveSeed()
	if opts.Logger != nil {
		opts.Logger.Info("starting terminal shell", "seed", seed, "fps", rt.TickRate)
	}

	session := flappy.NewSession(opts.Game, flappy.NewRand(seed), flappy.WithLogger(opts.Logger))
	model := NewModel(session, rt, opts.Logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
