// Package formats provides pluggable maze file parsers. Every format yields
// the same raw Level; turning rows into a playable maze is the loader's job.
package formats

import (
	"errors"
	"strings"
)

// ErrNoLayout is returned when a file carries no maze rows.
var ErrNoLayout = errors.New("level has no layout rows")

// Level is a parsed maze file.
type Level struct {
	ID       string
	Name     string
	Rows     []string
	Metadata map[string]string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".yaml", ".yml", ".toml", ".json"}
}

// splitRows turns a layout block into rows. Carriage returns and blank
// leading or trailing lines are dropped; spaces inside rows are corridor
// and are kept.
func splitRows(block string) []string {
	lines := strings.Split(strings.ReplaceAll(block, "\r\n", "\n"), "\n")
	return trimRows(lines)
}

func trimRows(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	rows := make([]string, 0, end-start)
	for _, l := range lines[start:end] {
		rows = append(rows, strings.TrimRight(l, "\r"))
	}
	return rows
}
