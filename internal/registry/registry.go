// Package registry maps board variants to game factories.
// The platform discovers and instantiates games through it without knowing
// how their persistence and sync backends are wired.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// Game is what the terminal front end drives.
// Games contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the score key of the game (e.g., "2048", "2048_mini").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game and starts a new round.
	// The RuntimeConfig provides screen dimensions, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Resize updates the screen dimensions without restarting.
	Resize(w, h int)

	// Step advances the game by one UI tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// Controls returns a one-line key hint.
	Controls() string
}

// Env carries per-player values a factory needs.
type Env struct {
	Player   string          // Name shown to spectators and stored with results
	Listener engine.Listener // Optional extra event observer
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func(env Env) (Game, error)

// Registry holds game factories in registration order.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	titles    map[string]string
	order     []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		titles:    make(map[string]string),
	}
}

// Register adds a game factory.
// Panics if a game with the same ID is already registered.
func (r *Registry) Register(id, title string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	r.factories[id] = f
	r.titles[id] = title
	r.order = append(r.order, id)
}

// List returns information about all registered games in registration order.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GameInfo, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, GameInfo{
			ID:    id,
			Title: r.titles[id],
		})
	}
	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func (r *Registry) Create(id string, env Env) (Game, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(env)
}

// Exists checks if a game with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}
