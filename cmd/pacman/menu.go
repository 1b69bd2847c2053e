package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the setup menu",
	Long: `Start in interactive menu mode.

Pick the mode, difficulty and starting level, then play. After a game
ends you return to the menu.

Controls:
  Up/Down/j/k     - Move between rows
  Left/Right/h/l  - Change the value
  Enter           - Start
  Tab             - High scores
  Q               - Quit

Examples:
  pacman menu
  pacman menu --fps 30
  pacman menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagLevelPath, "level", "", "Level file or directory to play instead of the built-in mazes")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := openLogger()
	defer closeLog()

	store := openStore(logger)
	cfg := runtimeConfig()

	pacman.SetLogger(logger)
	pacman.SetConfigPath(flagConfig)
	pacman.SetLevelPath(flagLevelPath)
	names := levelNames(flagLevelPath)

	selection := tui.MenuSelection{GameID: "pacman"}

	for {
		menuResult, err := tui.RunMenu(cfg, names, selection)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config
		selection = menuResult.Selection

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(source(store), cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		pacman.SetDifficultyPreset(string(selection.Difficulty))
		pacman.SetStartLevel(selection.StartLevel)

		game, err := registry.Create(selection.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if err := tui.Run(game, saver(store), cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
