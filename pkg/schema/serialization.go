package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeDocument parses a schema or value document authored in YAML or JSON
// (JSON being a YAML subset) into the external map form Check accepts. The
// document's top level must be a mapping.
//
// The core itself performs no I/O; reading the bytes is the caller's job.
func DecodeDocument(data []byte) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	normalized := normalizeKeys(raw)
	doc, ok := normalized.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decode document: top level must be a mapping, got %T", raw)
	}
	return doc, nil
}

// normalizeKeys rewrites any map[any]any nodes a YAML decode may produce
// into map[string]any, recursively, so documents behave exactly like
// JSON-decoded trees.
func normalizeKeys(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = normalizeKeys(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[fmt.Sprintf("%v", key)] = normalizeKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = normalizeKeys(val)
		}
		return out
	default:
		return value
	}
}
