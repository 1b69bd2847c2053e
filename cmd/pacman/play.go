package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
	flagLevelPath  string
	flagStartLevel int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game right away.

Controls:
  Arrows/WASD/HJKL - Steer
  P/Esc/Space      - Pause
  R                - Restart (after game over)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Modes:
  powerups - Power pellets roll a random effect
  classic  - Power pellets always frighten the ghosts

Difficulty options:
  easy, normal, hard, chaos - Ghost speed and its growth per level
  fixed                     - Ghost speed never grows

Examples:
  pacman play
  pacman play --mode classic
  pacman play --difficulty hard --start-level 3
  pacman play --level ./mazes/spiral.txt
  pacman play --config ./my-pacman.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, chaos, fixed")
	playCmd.Flags().StringVar(&flagMode, "mode", "powerups", "Game mode: powerups, classic")
	playCmd.Flags().StringVar(&flagLevelPath, "level", "", "Level file or directory to play instead of the built-in mazes")
	playCmd.Flags().IntVar(&flagStartLevel, "start-level", 0, "Level number to start on (0 = config default)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID, err := gameIDForMode(flagMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := checkPreset(flagDifficulty, flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagLevelPath != "" {
		if _, err := pacman.LoadLevels(flagLevelPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
			os.Exit(1)
		}
	}

	logger, closeLog := openLogger()
	defer closeLog()

	pacman.SetLogger(logger)
	pacman.SetConfigPath(flagConfig)
	pacman.SetDifficultyPreset(flagDifficulty)
	pacman.SetLevelPath(flagLevelPath)
	pacman.SetStartLevel(flagStartLevel)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	runErr := tui.Run(game, saver(store), runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
