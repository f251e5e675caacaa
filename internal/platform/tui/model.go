package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monster-hunt/internal/config"
	"github.com/vovakirdan/monster-hunt/internal/core"
	"github.com/vovakirdan/monster-hunt/internal/registry"
	"github.com/vovakirdan/monster-hunt/internal/storage"
)

// helpRows is the number of terminal rows used by the help bar.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// resizable is implemented by games that can adopt a new screen size
// without restarting, e.g. between rounds.
type resizable interface {
	Resize(cfg core.RuntimeConfig)
}

// seeded is implemented by games that can report the seed of the
// current round.
type seeded interface {
	Seed() int64
}

// GameOptions configures a GameModel.
type GameOptions struct {
	Store  *storage.Store // Optional; nil disables score and session recording
	Logger *log.Logger    // Optional; nil uses log.Default()
	Player string         // Name recorded with sessions
	NoHelp bool           // Hide the key help bar
}

// GameModel is the Bubble Tea model that runs one game: it feeds input
// frames to the game at the tick rate, renders it, and records finished
// hunts.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	helpRows   int
	inputFrame core.InputFrame
	gameState  core.GameState
	huntTicks  int    // Ticks played in the current hunt
	lastSaved  string // ID of the last recorded session
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new game model.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Player == "" {
		opts.Player = "local"
	}
	rows := helpRows
	if opts.NoHelp {
		rows = 0
	}
	cfg.ScreenH = max(cfg.ScreenH-rows, 1)

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     opts.Logger,
		player:     opts.Player,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		helpRows:   rows,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.abandon()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		// Leaving mid-hunt needs a pause first
		if m.gameState.GameOver || m.gameState.Paused {
			m.abandon()
			m.backToMenu = true
		}
		return m, nil

	case action == core.ActionRestart:
		m.abandon()
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-m.helpRows, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	// The field is sized from the screen, so a running hunt starts over.
	// A finished hunt keeps its result scene when the game can lay out the
	// next hunt itself.
	if r, ok := m.game.(resizable); ok && m.gameState.GameOver {
		r.Resize(m.config)
		return m, nil
	}
	m.abandon()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.huntTicks = 0

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver
	restarting := m.inputFrame.Has(core.ActionRestart)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case restarting, wasOver && !m.gameState.GameOver:
		// A new hunt began
		m.huntTicks = 0
	case !wasOver && !m.gameState.Paused:
		m.huntTicks++
	}

	if result.Finished {
		outcome := storage.OutcomeLost
		if m.gameState.Won {
			outcome = storage.OutcomeWon
		}
		m.record(outcome)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// abandon records the current hunt if the player leaves it unfinished.
func (m *GameModel) abandon() {
	if m.gameState.GameOver || m.huntTicks == 0 {
		return
	}
	m.record(storage.OutcomeAbandoned)
	m.huntTicks = 0
}

// record stores the score and session of the current hunt. Storage
// failures are logged; play continues regardless.
func (m *GameModel) record(outcome string) {
	secs := float64(m.huntTicks) * m.config.TickSeconds()
	m.logger.Info("hunt finished",
		"game", m.game.ID(),
		"player", m.player,
		"outcome", outcome,
		"kills", m.gameState.Score,
		"seconds", fmt.Sprintf("%.1f", secs),
	)
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 && outcome != storage.OutcomeAbandoned {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}

	sess := storage.Session{
		GameID:       m.game.ID(),
		Player:       m.player,
		Outcome:      outcome,
		Kills:        m.gameState.Score,
		DurationSecs: secs,
	}
	if s, ok := m.game.(seeded); ok {
		sess.Seed = s.Seed()
	}
	id, err := m.store.SaveSession(sess)
	if err != nil {
		m.logger.Warn("could not save session", "error", err)
		return
	}
	m.lastSaved = id
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, config.ConfigDirName, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	if m.helpRows == 0 {
		return renderFrame(m.screen, "")
	}
	return renderFrame(m.screen, helpStyle.Render(m.help.View(m.keyMapper.Keys)))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// LastSessionID returns the ID of the most recently recorded session.
func (m GameModel) LastSessionID() string {
	return m.lastSaved
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run starts a standalone Bubble Tea program for one game.
// Back returns control to the caller, as does quitting; the result
// reports which one happened.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		standaloneGame{model},
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks fire shots
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if sg, ok := final.(standaloneGame); ok {
		return sg.BackToMenu(), nil
	}
	return false, nil
}

// standaloneGame exits the program when the player goes back to the menu.
type standaloneGame struct {
	GameModel
}

func (s standaloneGame) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		s.GameModel = gm
	}
	if s.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}
