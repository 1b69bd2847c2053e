package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel is the YAML structure for a maze file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Layout   LayoutRows        `yaml:"layout"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// LayoutRows accepts either a block scalar or a sequence of strings.
type LayoutRows []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *LayoutRows) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*r = splitRows(node.Value)
		return nil
	case yaml.SequenceNode:
		var rows []string
		if err := node.Decode(&rows); err != nil {
			return err
		}
		*r = trimRows(rows)
		return nil
	default:
		return fmt.Errorf("line %d: layout must be a string or a list of strings", node.Line)
	}
}

// ParseYAML parses a YAML maze file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yl.Layout) == 0 {
		return Level{}, ErrNoLayout
	}
	return Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Rows:     yl.Layout,
		Metadata: yl.Metadata,
	}, nil
}
