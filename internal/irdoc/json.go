package irdoc

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// decodeJSON returns the generic tree of a JSON document. Numbers are kept
// as number so their source text survives.
func decodeJSON(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty JSON")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	return normalizeJSON(tree), nil
}

func normalizeJSON(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, child := range v {
			v[k] = normalizeJSON(child)
		}
		return v
	case []any:
		for i, child := range v {
			v[i] = normalizeJSON(child)
		}
		return v
	case json.Number:
		return number(v.String())
	default:
		return v
	}
}
