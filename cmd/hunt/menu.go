package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-hunt/internal/games/monsters"
	"github.com/vovakirdan/monster-hunt/internal/platform/tui"
	"github.com/vovakirdan/monster-hunt/internal/prefs"
	"github.com/vovakirdan/monster-hunt/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Left/Right changes the difficulty. After a game you return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select game
  Tab             - Scoreboard
  Q               - Quit

Examples:
  hunt menu
  hunt menu --fps 30
  hunt menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs := prefs.Open(prefs.AppName)

	difficulty, err := chooseDifficulty(userPrefs.Get().Difficulty)
	if err != nil {
		return err
	}
	if err := configureGames(difficulty, logger); err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()

	// Menu loop
	for {
		saved := userPrefs.Get()
		menuResult, err := tui.RunMenu(store, cfg, saved.LastGame, difficulty)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		difficulty = menuResult.Difficulty

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		monsters.SetDifficultyPreset(difficulty)

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if err := userPrefs.Update(func(p *prefs.Prefs) {
			p.LastGame = gameID
			p.Difficulty = difficulty
		}); err != nil {
			logger.Warn("could not save preferences", "error", err)
		}

		// Fresh seed per game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, cfg, gameOptions(store, logger, saved))
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			break
		}
	}

	return nil
}
