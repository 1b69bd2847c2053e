// pacman is a terminal Pac-Man with timed power-ups and combo scoring.
//
// Usage:
//
//	pacman list              - List game modes
//	pacman play              - Play a game
//	pacman menu              - Pick mode, difficulty and level interactively
//	pacman scores            - Show high scores
//	pacman levels [path]     - Validate and summarize level files
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>   - Set log file (default: ~/.arcade/pacman.log)
//	--debug             - Log round events at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man in your terminal",
	Long: `A terminal Pac-Man with four ghosts, random power pellet effects
and combo scoring.

Available commands:
  list     - Show game modes
  play     - Start a game directly
  menu     - Interactive setup menu
  scores   - View high scores
  levels   - Check level files

Examples:
  pacman play
  pacman play --mode classic --difficulty hard
  pacman play --level ./mazes
  pacman menu
  pacman scores --difficulty chaos`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/pacman.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
