package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/monster-hunt/internal/config"
	"github.com/vovakirdan/monster-hunt/internal/core"
	"github.com/vovakirdan/monster-hunt/internal/games/monsters"
	"github.com/vovakirdan/monster-hunt/internal/platform/tui"
	"github.com/vovakirdan/monster-hunt/internal/prefs"
	"github.com/vovakirdan/monster-hunt/internal/registry"
	"github.com/vovakirdan/monster-hunt/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game, or the last one you played.

Controls:
  Arrows/WASD    - Move the aim cursor
  Space/Enter/F  - Fire at the cursor
  Mouse click    - Fire at the clicked cell
  P              - Pause
  R              - Restart
  Esc/B          - Back (while paused or after the hunt)
  Q/Ctrl+C       - Quit
  Ctrl+S         - Screenshot

Difficulty options:
  easy   - Start at lowest difficulty, slower monsters
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, smaller shots
  fixed  - No progression, stays at config's initial level

Examples:
  hunt play
  hunt play monsters --difficulty easy
  hunt play monsters_endless --difficulty hard
  hunt play monsters --config ./my-monsters.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs := prefs.Open(prefs.AppName)
	saved := userPrefs.Get()

	gameID := saved.LastGame
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'hunt list' to see available games)", gameID)
	}

	difficulty, err := chooseDifficulty(saved.Difficulty)
	if err != nil {
		return err
	}
	if err := configureGames(difficulty, logger); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, terminalConfig(), gameOptions(store, logger, saved)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if err := userPrefs.Update(func(p *prefs.Prefs) {
		p.LastGame = gameID
		p.Difficulty = difficulty
	}); err != nil {
		logger.Warn("could not save preferences", "error", err)
	}
	return nil
}

// chooseDifficulty returns --difficulty if set, otherwise the saved one.
func chooseDifficulty(saved string) (string, error) {
	if flagDifficulty == "" {
		return saved, nil
	}
	if config.ParsePreset(flagDifficulty) == "" {
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}
	return flagDifficulty, nil
}

// configureGames passes CLI options to the game package before games are
// created. A bad --config path is reported here rather than silently
// replaced by defaults.
func configureGames(difficulty string, logger *log.Logger) error {
	if flagConfig != "" {
		cfg, err := config.LoadMonsters(flagConfig)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config %s: %w", flagConfig, err)
		}
	}
	monsters.SetConfigPath(flagConfig)
	monsters.SetDifficultyPreset(difficulty)
	monsters.SetLogger(logger)
	return nil
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Without it the game still works,
// it just records nothing.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "error", err)
		return nil
	}
	return store
}

func gameOptions(store *storage.Store, logger *log.Logger, p prefs.Prefs) tui.GameOptions {
	player := p.PlayerName
	if player == "" {
		if u, err := user.Current(); err == nil {
			player = u.Username
		}
	}
	return tui.GameOptions{
		Store:  store,
		Logger: logger,
		Player: player,
		NoHelp: !p.ShowHelp,
	}
}
