package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// ParseText parses a plain layout file. Leading lines of the form
// "; key: value" are a header; id and name are lifted out of it and any
// other keys land in Metadata.
func ParseText(data []byte) (Level, error) {
	lvl := Level{Metadata: map[string]string{}}

	var lines []string
	header := true
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if header && strings.HasPrefix(line, ";") {
			key, value, ok := strings.Cut(strings.TrimPrefix(line, ";"), ":")
			if !ok {
				continue
			}
			key, value = strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value)
			switch key {
			case "id":
				lvl.ID = value
			case "name":
				lvl.Name = value
			default:
				lvl.Metadata[key] = value
			}
			continue
		}
		header = false
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return Level{}, fmt.Errorf("text scan: %w", err)
	}

	lvl.Rows = trimRows(lines)
	if len(lvl.Rows) == 0 {
		return Level{}, ErrNoLayout
	}
	return lvl, nil
}
