package formats

import (
	"encoding/json"
	"fmt"
)

// JSONLevel is the JSON structure for a maze file. Rows live under "tiles".
type JSONLevel struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Tiles    []string          `json:"tiles"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ParseJSON parses a JSON maze file.
func ParseJSON(data []byte) (Level, error) {
	var jl JSONLevel
	if err := json.Unmarshal(data, &jl); err != nil {
		return Level{}, fmt.Errorf("json unmarshal: %w", err)
	}
	rows := trimRows(jl.Tiles)
	if len(rows) == 0 {
		return Level{}, ErrNoLayout
	}
	return Level{
		ID:       jl.ID,
		Name:     jl.Name,
		Rows:     rows,
		Metadata: jl.Metadata,
	}, nil
}
