package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [path]",
	Short: "Validate and summarize level files",
	Long: `Load every level file under path (or the built-in mazes) and print
a summary of each. Files that fail to parse or validate are listed with
the reason.

Supported formats: .txt (plain layout), .json, .yaml/.yml, .toml

Examples:
  pacman levels
  pacman levels ./mazes
  pacman levels ./mazes/spiral.toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	var (
		lvls    []levels.Level
		skipped []levels.Skipped
		err     error
	)

	switch {
	case len(args) == 0:
		lvls, skipped, err = levels.Builtin().LoadAllReport()
	default:
		info, statErr := os.Stat(args[0])
		if statErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", statErr)
			os.Exit(1)
		}
		if info.IsDir() {
			lvls, skipped, err = levels.NewLoader(args[0]).LoadAllReport()
		} else {
			var lvl levels.Level
			lvl, err = levels.LoadPath(args[0])
			lvls = []levels.Level{lvl}
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, _ := config.LoadPacman("")

	if len(lvls) == 0 {
		fmt.Println("No valid levels found.")
	} else {
		fmt.Printf("  %-12s  %-20s  %-7s  %-7s  %-6s  %-6s  %s\n",
			"ID", "Name", "Size", "Pellets", "Power", "Ghosts", "Max points")
		fmt.Printf("  %-12s  %-20s  %-7s  %-7s  %-6s  %-6s  %s\n",
			"--", "----", "----", "-------", "-----", "------", "----------")
		for i := range lvls {
			l := &lvls[i]
			st := l.Stats(cfg.Scoring.Pellet, cfg.Scoring.Power)
			fmt.Printf("  %-12s  %-20s  %-7s  %-7d  %-6d  %-6d  %d\n",
				l.ID, l.Name, fmt.Sprintf("%dx%d", st.Width, st.Height),
				st.Pellets, st.Powers, st.Ghosts, st.MaxPoints)
		}
	}

	if len(skipped) > 0 {
		fmt.Println()
		fmt.Printf("Skipped %d file(s):\n", len(skipped))
		for _, s := range skipped {
			fmt.Printf("  %s: %v\n", s.Path, s.Err)
		}
		os.Exit(1)
	}
}
