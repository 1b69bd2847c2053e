package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// Game ids per --mode value.
var modeIDs = map[string]string{
	"powerups": "pacman",
	"classic":  "pacman_classic",
}

func gameIDForMode(mode string) (string, error) {
	id, ok := modeIDs[strings.ToLower(strings.TrimSpace(mode))]
	if !ok {
		return "", fmt.Errorf("unknown mode %q (want powerups or classic)", mode)
	}
	return id, nil
}

func expandHome(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}

// openLogger opens the log file. The terminal belongs to the UI, so when the
// file can't be opened logs are discarded.
func openLogger() (*log.Logger, func()) {
	path := expandHome(flagLogFile)
	if path == "" {
		return log.New(io.Discard), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacman",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { _ = f.Close() }
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. A failure is reported and play goes on
// without scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// saver returns store as a tui.ScoreSaver, keeping a nil store a nil interface.
func saver(store *storage.Store) tui.ScoreSaver {
	if store == nil {
		return nil
	}
	return store
}

func source(store *storage.Store) tui.ScoreSource {
	if store == nil {
		return nil
	}
	return store
}

// checkPreset rejects a difficulty name that neither the built-in table nor
// the config file defines.
func checkPreset(name, configPath string) error {
	if name == "" {
		return nil
	}
	table := config.BuiltinPresets()
	if cfg, err := config.LoadPacman(configPath); err == nil {
		for k, v := range cfg.Difficulty.Presets {
			table[k] = v
		}
	}
	_, err := config.ResolvePreset(table, config.ParsePreset(name))
	return err
}

// levelNames lists the maze names for the menu.
func levelNames(path string) []string {
	lvls, err := pacman.LoadLevels(path)
	if err != nil {
		return nil
	}
	names := make([]string, len(lvls))
	for i, l := range lvls {
		names[i] = l.Name
		if names[i] == "" {
			names[i] = l.ID
		}
	}
	return names
}
