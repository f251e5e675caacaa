package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-hunt/internal/registry"
	"github.com/vovakirdan/monster-hunt/internal/storage"
)

var (
	flagRecent int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores, win/loss totals and recent hunts for
the specified game.

Examples:
  hunt scores monsters
  hunt scores monsters_endless --recent 0
  hunt scores monsters --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent hunts to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all high scores for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q (run 'hunt list' to see available games)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared high scores for %s.\n", info.Title)
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hunt play %s' to set the first high score!\n", gameID)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Kills", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Played: %d   Won: %d   Lost: %d\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.Losses)
	}

	if flagRecent <= 0 {
		return nil
	}
	sessions, err := store.GameSessions(gameID, flagRecent)
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}

	fmt.Println()
	fmt.Println("Recent hunts:")
	if len(sessions) == 0 {
		fmt.Println("  none")
	}
	for _, s := range sessions {
		fmt.Printf("  %s  %-9s  %3d kills  %6.1fs  %s\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.Outcome, s.Kills, s.DurationSecs, s.Player)
	}
	return nil
}
