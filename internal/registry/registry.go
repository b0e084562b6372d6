// Package registry provides a global registry of presentation shells.
// Shells register themselves in init() functions, so the CLI can discover
// and start them without hardcoded dependencies; a shell compiled out by a
// build tag simply does not appear.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Shell is a presentation layer that owns a display and a frame loop and
// drives a game session from it.
type Shell interface {
	// ID returns a unique identifier (e.g., "tui", "window").
	// Used for CLI flags.
	ID() string

	// Title returns a human-readable description.
	Title() string

	// Run blocks until the player quits or ctx is cancelled.
	Run(ctx context.Context, opts RunOptions) error
}

// RunOptions is everything a shell needs to start a session.
type RunOptions struct {
	Game    config.FlappyConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// ShellInfo contains metadata about a registered shell.
type ShellInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new shell instance.
type Factory func() Shell

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a shell factory to the registry.
// Panics if a shell with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: shell %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered shells, sorted by ID.
func List() []ShellInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ShellInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ShellInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a shell by its ID.
func Create(id string) (Shell, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown shell %q", id)
	}

	return f(), nil
}

// Exists checks if a shell with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
