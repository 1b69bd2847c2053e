package formats

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// TOMLLevel is the TOML structure for a maze file. The layout is usually a
// multi-line literal string.
type TOMLLevel struct {
	ID       string            `toml:"id"`
	Name     string            `toml:"name"`
	Layout   string            `toml:"layout"`
	Metadata map[string]string `toml:"metadata"`
}

// ParseTOML parses a TOML maze file. Unknown top-level keys are rejected so
// typos in hand-written maps surface.
func ParseTOML(data []byte) (Level, error) {
	var tl TOMLLevel
	md, err := toml.Decode(string(data), &tl)
	if err != nil {
		return Level{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Level{}, fmt.Errorf("toml decode: unknown key %q", undecoded[0].String())
	}

	rows := splitRows(tl.Layout)
	if len(rows) == 0 {
		return Level{}, ErrNoLayout
	}
	return Level{
		ID:       tl.ID,
		Name:     tl.Name,
		Rows:     rows,
		Metadata: tl.Metadata,
	}, nil
}
