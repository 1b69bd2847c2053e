package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPacman loads the Pac-Man configuration.
// Search order: customPath -> ~/.arcade/configs/pacman.yaml ->
// ./configs/pacman.yaml -> embedded default -> hardcoded default.
// Files are decoded on top of the defaults, so partial files are fine.
func LoadPacman(customPath string) (PacmanConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultPacmanConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodePacman(data)
		if err != nil {
			return DefaultPacmanConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Unreadable or broken optional files fall through to the next source.
	var candidates []string
	if p := userConfigPath("pacman.yaml"); p != "" {
		candidates = append(candidates, p)
	}
	candidates = append(candidates, filepath.Join("configs", "pacman.yaml"))
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decodePacman(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decodePacman(defaultPacmanYAML)
	if err != nil {
		return DefaultPacmanConfig(), nil
	}
	return cfg, nil
}

func decodePacman(data []byte) (PacmanConfig, error) {
	cfg := DefaultPacmanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
