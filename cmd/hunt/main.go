// hunt is a terminal monster shooter: monsters walk in from the right,
// you shoot them from the left edge before they get through.
//
// Usage:
//
//	hunt list              - List available games
//	hunt play [game]       - Play a game (default: last played)
//	hunt menu              - Start menu to pick games interactively
//	hunt serve             - Start SSH and HTTP servers
//	hunt scores <game>     - Show high scores and recent hunts
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.hunt/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Log file for interactive play (default: ~/.hunt/hunt.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/monster-hunt/internal/games/monsters"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hunt",
	Short: "Monster Hunt - shoot the monsters before they get through",
	Long: `Monster Hunt is a terminal shooter. Monsters spawn on the right edge
and walk left; you aim and shoot from the left edge. Kill more than 30 to
win, let one through and you lose.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play and the HTTP leaderboard
  scores   - View high scores

Examples:
  hunt list
  hunt play
  hunt play monsters_endless --difficulty hard
  hunt menu
  hunt serve --ssh :2222 --http :8080
  hunt scores monsters`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hunt/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.hunt/hunt.log", "Log file for interactive play")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
