package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/config"
)

func TestGameIDForMode(t *testing.T) {
	tests := []struct {
		mode    string
		want    string
		wantErr bool
	}{
		{"powerups", "pacman", false},
		{" Classic ", "pacman_classic", false},
		{"arcade", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			got, err := gameIDForMode(tt.mode)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("gameIDForMode(%q) = %q, want %q", tt.mode, got, tt.want)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := expandHome("~/.arcade/pacman.log"); got != filepath.Join(home, ".arcade", "pacman.log") {
		t.Errorf("expandHome = %q", got)
	}
	if got := expandHome("/var/log/pacman.log"); got != "/var/log/pacman.log" {
		t.Errorf("absolute path changed: %q", got)
	}
}

func TestCheckPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	for _, name := range []string{"", "easy", "HARD", " chaos ", "fixed"} {
		if err := checkPreset(name, ""); err != nil {
			t.Errorf("checkPreset(%q) = %v", name, err)
		}
	}

	err := checkPreset("insane", "")
	if !errors.Is(err, config.ErrUnknownPreset) {
		t.Errorf("checkPreset(insane) = %v, want ErrUnknownPreset", err)
	}
}

func TestCheckPresetFromConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "custom.yaml")
	data := []byte("difficulty:\n  presets:\n    insane:\n      ghost_speed: 200\n      ghost_speed_growth: 1.2\n      powerup_duration_factor: 0.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	if err := checkPreset("insane", path); err != nil {
		t.Errorf("preset from config file rejected: %v", err)
	}
}

func TestSaverKeepsNilInterface(t *testing.T) {
	if saver(nil) != nil {
		t.Error("nil store should give a nil ScoreSaver")
	}
	if source(nil) != nil {
		t.Error("nil store should give a nil ScoreSource")
	}
}
