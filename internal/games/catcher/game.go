// Package catcher implements Fruit Catcher.
// A paddle at the bottom catches falling fruit for points and loses a life
// for every bomb it touches; the game ends when no lives remain.
package catcher

import (
	"sync"
	"time"

	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/registry"
)

// ID is the registry and score-storage identifier of the game.
const ID = "catcher"

// LoopState is the state of the game loop.
type LoopState int

const (
	StateRunning LoopState = iota
	StatePaused
	StateGameOver
	StateExited
)

// String returns a human-readable name for the state.
func (s LoopState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game-over"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

var (
	configMu   sync.RWMutex
	configPath string
	pinned     *config.CatcherConfig
)

// SetConfigPath sets the custom config path loaded by games created with New.
func SetConfigPath(path string) {
	configMu.Lock()
	defer configMu.Unlock()
	configPath = path
}

// UseConfig pins an already loaded configuration for games created with New.
func UseConfig(cfg config.CatcherConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	pinned = &cfg
}

// activeConfig returns the pinned config, or loads one from configPath.
func activeConfig() config.CatcherConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	if pinned != nil {
		return *pinned
	}
	cfg, err := config.LoadCatcher(configPath)
	if err != nil {
		return config.DefaultCatcherConfig()
	}
	return cfg
}

// Game implements the Fruit Catcher game logic.
type Game struct {
	cfg        config.CatcherConfig
	fixed      bool // cfg was given explicitly and is not reloaded on Reset
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	clock      core.Clock

	player    Player
	objects   []FallingObject
	spawner   *Spawner
	score     int
	lives     int
	fallSpeed float64
	state     LoopState

	startedAt time.Duration
	endedAt   time.Duration // valid once the game is over
	frames    int           // gameplay frames simulated
}

// New creates a game that picks up the package-level configuration on Reset.
func New() *Game {
	return &Game{cfg: config.DefaultCatcherConfig()}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.CatcherConfig) *Game {
	return &Game{cfg: cfg, fixed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fruit Catcher"
}

// LogicalSize returns the canvas size the simulation runs on.
func (g *Game) LogicalSize() (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Reset starts a new game. The terminal size in runtime does not affect the
// simulation, which always runs on the configured logical canvas.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixed {
		g.cfg = activeConfig()
	}
	g.runtime = runtime
	g.clock = runtime.ClockOrSystem()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	w, h := g.size()
	g.player = NewPlayer(g.cfg.Player, w, h)
	g.objects = g.objects[:0]
	g.score = 0
	g.lives = g.cfg.Rules.Lives
	g.fallSpeed = g.cfg.Objects.InitialSpeed
	g.state = StateRunning
	g.frames = 0
	g.startedAt = g.clock.Now()
	g.endedAt = 0
	g.spawner = NewSpawner(runtime.Seed, g.startedAt, g.cfg.Screen.Width, g.cfg.Objects, g.difficulty)
}

// Step processes one frame of input.
//
// Quit exits from any state. On the game-over screen a dismiss exits too.
// A frame carrying a pause toggle only toggles; it does not advance gameplay.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == StateExited {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionQuit) {
		g.state = StateExited
		return core.StepResult{State: g.State()}
	}

	switch g.state {
	case StateGameOver:
		if in.Has(core.ActionDismiss) {
			g.state = StateExited
		}
		return core.StepResult{State: g.State()}
	case StateRunning, StatePaused:
		if in.Has(core.ActionPause) {
			g.TogglePause()
			return core.StepResult{State: g.State()}
		}
	}

	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	events := g.frame(in)
	return core.StepResult{State: g.State(), Events: events}
}

// frame runs one gameplay update in order: player, spawner, falling objects,
// collisions, then the game-over check.
func (g *Game) frame(in core.InputFrame) []core.Event {
	g.frames++
	w, h := g.size()

	g.player.Update(in, w)

	if obj, ok := g.spawner.Update(g.clock.Now(), g.score, g.fallSpeed); ok {
		g.objects = append(g.objects, obj)
	}

	g.objects = updateObjects(g.objects, h)

	events := g.resolveCollisions()

	if g.lives <= 0 {
		g.state = StateGameOver
		g.endedAt = g.clock.Now()
		events = append(events, core.Event{Kind: core.EventGameOver, Value: float64(g.score)})
	}
	return events
}

// TogglePause switches between running and paused. Other states are unaffected.
func (g *Game) TogglePause() {
	switch g.state {
	case StateRunning:
		g.state = StatePaused
	case StatePaused:
		g.state = StateRunning
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.state == StateGameOver || (g.state == StateExited && g.lives <= 0),
		Paused:   g.state == StatePaused,
		Exited:   g.state == StateExited,
	}
}

// LoopState returns the state machine's current state.
func (g *Game) LoopState() LoopState {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// FallSpeed returns the speed newly spawned objects get.
func (g *Game) FallSpeed() float64 {
	return g.fallSpeed
}

// Player returns a copy of the paddle.
func (g *Game) Player() Player {
	return g.player
}

// Objects returns a copy of the falling objects.
func (g *Game) Objects() []FallingObject {
	out := make([]FallingObject, len(g.objects))
	copy(out, g.objects)
	return out
}

// Frames returns how many gameplay frames have been simulated.
func (g *Game) Frames() int {
	return g.frames
}

// Elapsed returns wall-clock time since the game started, paused time
// included. It stops advancing once the game is over.
func (g *Game) Elapsed() time.Duration {
	if g.clock == nil {
		return 0
	}
	if g.state == StateGameOver || (g.state == StateExited && g.lives <= 0) {
		return g.endedAt - g.startedAt
	}
	return g.clock.Now() - g.startedAt
}

func (g *Game) size() (float64, float64) {
	return float64(g.cfg.Screen.Width), float64(g.cfg.Screen.Height)
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
