package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-catcher/internal/audio"
	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/platform/raster"
	"github.com/vovakirdan/fruit-catcher/internal/registry"
	"github.com/vovakirdan/fruit-catcher/internal/storage"
)

const defaultPlayer = "player"

// Options configures how a game runs in the terminal.
type Options struct {
	Store         *storage.Store // nil disables score saving
	Logger        *log.Logger    // nil discards logs
	Sound         audio.Player   // nil is silent
	Player        string         // name stored with scores
	HoldWindow    time.Duration  // how long a movement key stays held
	GameOverPoll  time.Duration  // tick interval on the game-over screen
	ScreenshotDir string         // empty disables ctrl+s
	Embedded      bool           // report Done instead of quitting the program
	Now           func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Sound == nil {
		o.Sound = audio.Nop{}
	}
	if o.Player == "" {
		o.Player = defaultPlayer
	}
	if o.HoldWindow <= 0 {
		o.HoldWindow = 150 * time.Millisecond
	}
	if o.GameOverPoll <= 0 {
		o.GameOverPoll = 100 * time.Millisecond
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game   registry.Game
	opts   Options
	config core.RuntimeConfig

	screen *core.Screen
	canvas *CellCanvas
	keys   *KeyMapper
	held   *KeyState
	input  core.InputFrame

	gameState  core.GameState
	flashing   bool
	quitting   bool
	done       bool
	scoreSaved bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	opts = opts.withDefaults()
	w, h := game.LogicalSize()

	return Model{
		game:   game,
		opts:   opts,
		config: cfg,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		canvas: NewCellCanvas(w, h, cfg.ScreenW, cfg.ScreenH),
		keys:   NewKeyMapper(),
		held:   NewKeyState(opts.HoldWindow),
		input:  core.NewInputFrame(),
	}
}

// Init starts a new game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && !m.flashing {
			m.input.Set(core.ActionDismiss)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.canvas.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case FreezeDoneMsg:
		m.flashing = false
		return m, m.nextTick()
	}

	return m, nil
}

// handleKey records input for the next tick. During a flash only quit and
// held movement are kept. Auto-repeats of a held movement key do not
// dismiss the game-over screen; a fresh press does.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	if m.flashing {
		switch action := m.keys.MapKey(msg); action {
		case core.ActionQuit:
			m.input.Set(core.ActionQuit)
		case core.ActionLeft, core.ActionRight:
			m.held.Press(action, m.opts.Now())
		}
		return m, nil
	}
	if m.keys.IsSnapshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKeyToFrame(msg, &m.input); action {
	case core.ActionLeft, core.ActionRight:
		now := m.opts.Now()
		if !m.held.Held(action, now) {
			m.input.Set(core.ActionDismiss)
		}
		m.held.Press(action, now)
	}
	return m, nil
}

// handleTick steps the simulation once and reacts to its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.flashing || m.done {
		return m, nil
	}

	m.held.Apply(&m.input, m.opts.Now())
	result := m.game.Step(m.input)
	m.input.Clear()
	m.gameState = result.State

	var freeze time.Duration
	for _, e := range result.Events {
		if s, ok := audio.ForEvent(e.Kind); ok {
			m.opts.Sound.Play(s)
		}
		switch e.Kind {
		case core.EventFlash:
			m.flashing = true
			freeze += e.Duration
		case core.EventSpeedUp:
			m.opts.Logger.Debug("speed up", "fall_speed", e.Value)
		case core.EventGameOver:
			m.opts.Logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score, "elapsed", m.elapsed())
		}
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	if m.gameState.Exited {
		m.held.Reset()
		if m.opts.Embedded {
			m.done = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.flashing {
		return m, freezeCmd(freeze)
	}
	return m, m.nextTick()
}

// nextTick schedules the next tick at the rate the current state needs.
func (m Model) nextTick() tea.Cmd {
	if m.gameState.GameOver {
		return pollCmd(m.opts.GameOverPoll)
	}
	return tickCmd(m.config.TickRate)
}

func (m Model) elapsed() time.Duration {
	if t, ok := m.game.(registry.Timer); ok {
		return t.Elapsed()
	}
	return 0
}

// saveScore records a finished game with a positive score.
func (m Model) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.opts.Store.SaveScore(storage.ScoreRecord{
		GameID:   m.game.ID(),
		Player:   m.opts.Player,
		Score:    m.gameState.Score,
		Duration: m.elapsed(),
	})
	if err != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current frame as a PNG.
func (m Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	c, err := raster.Render(m.game, m.flashing)
	if err != nil {
		m.opts.Logger.Warn("could not render screenshot", "error", err)
		return
	}
	defer c.Close()

	path := raster.SnapshotPath(m.opts.ScreenshotDir, m.game.ID(), m.opts.Now())
	if err := c.SavePNG(path); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current frame to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if f, ok := m.game.(registry.Flasher); ok && m.flashing {
		f.RenderFlash(m.canvas)
	} else {
		m.game.Render(m.canvas)
	}
	m.canvas.Flush(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state seen by the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Flashing reports whether the damage flash freeze is in progress.
func (m Model) Flashing() bool {
	return m.flashing
}

// Done reports whether an embedded game has exited.
func (m Model) Done() bool {
	return m.done
}

// Screen returns the cell buffer of the last View.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Run plays game in the terminal until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	opts.Embedded = false
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
