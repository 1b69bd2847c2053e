package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagScoresMode       string
	flagScoresLimit      int
	flagScoresDifficulty string
	flagScoresClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores for a game mode.

Examples:
  pacman scores
  pacman scores --mode classic --limit 20
  pacman scores --difficulty hard
  pacman scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "powerups", "Game mode: powerups, classic")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show scores for this difficulty")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID, err := gameIDForMode(flagScoresMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scores cleared for %s.\n", title)
		return
	}

	difficulty := ""
	if flagScoresDifficulty != "" {
		difficulty = string(config.ParsePreset(flagScoresDifficulty))
	}

	scores, err := store.TopScores(gameID, difficulty, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	heading := fmt.Sprintf("High Scores - %s", title)
	if difficulty != "" {
		heading += fmt.Sprintf(" (%s)", strings.ToUpper(difficulty))
	}
	fmt.Println(heading)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pacman play --mode %s' to set the first high score!\n", flagScoresMode)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-10s  %s\n", "Rank", "Score", "Level", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-10s  %s\n", "----", "-----", "-----", "----------", "----")

	for i, entry := range scores {
		diff := entry.Difficulty
		if diff == "" {
			diff = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %-10s  %s\n", i+1, entry.Score, entry.Level, diff, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d  Games: %d  Avg: %.0f  Max level: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.MaxLevel)
	}
}
