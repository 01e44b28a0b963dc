package irdoc

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// decodeYAML returns the generic tree of a YAML document, shaped like the
// one decodeJSON produces.
func decodeYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty YAML")
	}
	return fromYAML(doc.Content[0])
}

func fromYAML(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return fromYAML(n.Alias)

	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			v, err := fromYAML(val)
			if err != nil {
				return nil, err
			}
			m[key.Value] = v
		}
		return m, nil

	case yaml.SequenceNode:
		s := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			s = append(s, v)
		}
		return s, nil

	case yaml.ScalarNode:
		// yaml.v3 keeps the text of every scalar in Value; the resolved tag
		// tells numbers from strings.
		switch n.ShortTag() {
		case "!!int", "!!float":
			return number(n.Value), nil
		case "!!null":
			return nil, nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, fmt.Errorf("line %d: %w", n.Line, err)
			}
			return b, nil
		default:
			return n.Value, nil
		}

	default:
		return nil, fmt.Errorf("line %d: unexpected YAML node kind %d", n.Line, n.Kind)
	}
}
