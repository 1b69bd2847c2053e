// Package levels loads Pac-Man mazes from embedded maps or a directory.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels/formats"
)

//go:embed maps
var builtinMaps embed.FS

// ErrNotFound is returned by LoadByID for an unknown id.
var ErrNotFound = errors.New("level not found")

// Level is a validated maze definition.
type Level struct {
	ID       string
	Name     string
	Rows     []string
	Metadata map[string]string
	FilePath string

	maze *core.Maze
}

// Maze returns a fresh copy of the level's maze with every pellet in place.
func (l *Level) Maze() *core.Maze {
	return l.maze.Clone()
}

// Stats summarizes the level using the given point values.
func (l *Level) Stats(pelletPoints, powerPoints int) core.MazeStats {
	return core.ComputeMazeStats(l.maze, pelletPoints, powerPoints)
}

// Loader reads levels from a file system tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// NewFSLoader creates a loader over dir inside fsys.
func NewFSLoader(fsys fs.FS, dir string) *Loader {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		sub = fsys
	}
	return &Loader{Root: dir, fsys: sub}
}

// Builtin returns a loader over the embedded maps.
func Builtin() *Loader {
	return NewFSLoader(builtinMaps, "maps")
}

// LoadAll recursively scans and loads all level files, skipping files that
// fail to parse or validate. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	levels, _, err := l.scan()
	return levels, err
}

// Skipped is a file LoadAll ignored and why.
type Skipped struct {
	Path string
	Err  error
}

// LoadAllReport is LoadAll that also returns the files it skipped.
func (l *Loader) LoadAllReport() ([]Level, []Skipped, error) {
	return l.scan()
}

func (l *Loader) scan() ([]Level, []Skipped, error) {
	var (
		levels  []Level
		skipped []Skipped
	)
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		lvl, err := l.load(p)
		if err != nil {
			skipped = append(skipped, Skipped{Path: l.display(p), Err: err})
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, skipped, nil
}

// LoadFile loads one level file given relative to the loader root.
func (l *Loader) LoadFile(name string) (Level, error) {
	return l.load(path.Clean(strings.ReplaceAll(name, `\`, "/")))
}

func (l *Loader) load(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", l.display(p), err)
	}
	lvl, err := Parse(data, path.Ext(p), strings.TrimSuffix(path.Base(p), path.Ext(p)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", l.display(p), err)
	}
	lvl.FilePath = l.display(p)
	return lvl, nil
}

func (l *Loader) display(p string) string {
	if l.Root == "" {
		return p
	}
	return path.Join(strings.ReplaceAll(l.Root, `\`, "/"), p)
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// LoadPath loads a single level from a file on disk.
func LoadPath(file string) (Level, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", file, err)
	}
	base := path.Base(strings.ReplaceAll(file, `\`, "/"))
	lvl, err := Parse(data, path.Ext(base), strings.TrimSuffix(base, path.Ext(base)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", file, err)
	}
	lvl.FilePath = file
	return lvl, nil
}

// LoadFromPath loads every level under a directory, or the single level in
// a file. An empty directory is an error.
func LoadFromPath(p string) ([]Level, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("level path: %w", err)
	}
	if !info.IsDir() {
		lvl, err := LoadPath(p)
		if err != nil {
			return nil, err
		}
		return []Level{lvl}, nil
	}

	lvls, err := NewLoader(p).LoadAll()
	if err != nil {
		return nil, err
	}
	if len(lvls) == 0 {
		return nil, fmt.Errorf("%w: no valid levels in %s", ErrNotFound, p)
	}
	return lvls, nil
}

// Parse decodes data in the format named by ext, then builds and validates
// the maze. defaultID is used when the file has no id of its own.
func Parse(data []byte, ext, defaultID string) (Level, error) {
	raw, err := parseByExtension(data, strings.ToLower(ext))
	if err != nil {
		return Level{}, err
	}
	m, err := core.ParseLayout(raw.Rows)
	if err != nil {
		return Level{}, err
	}
	if err := core.ValidateMaze(m); err != nil {
		return Level{}, err
	}

	lvl := Level{
		ID:       raw.ID,
		Name:     raw.Name,
		Rows:     raw.Rows,
		Metadata: raw.Metadata,
		maze:     m,
	}
	if lvl.ID == "" {
		lvl.ID = defaultID
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}
	return lvl, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".txt":
		return formats.ParseText(data)
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".toml":
		return formats.ParseTOML(data)
	case ".json":
		return formats.ParseJSON(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
