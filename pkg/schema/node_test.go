package schema

import (
	"testing"
)

func TestParseLeaf(t *testing.T) {
	tests := []struct {
		expr     string
		types    []string
		optional bool
	}{
		{"string", []string{"string"}, false},
		{"string?", []string{"string"}, true},
		{"string|number", []string{"string", "number"}, false},
		{" string | number ?", []string{"string", "number"}, true},
		{"String|NUMBER", []string{"string", "number"}, false},
		{"string||number|", []string{"string", "number"}, false},
	}

	for _, tt := range tests {
		node := Parse(tt.expr)
		if node.Kind != LeafNode {
			t.Errorf("Parse(%q).Kind = %v, want LeafNode (%s)", tt.expr, node.Kind, node.Reason)
			continue
		}
		if node.Optional != tt.optional {
			t.Errorf("Parse(%q).Optional = %v, want %v", tt.expr, node.Optional, tt.optional)
		}
		if len(node.Types) != len(tt.types) {
			t.Errorf("Parse(%q).Types = %v, want %v", tt.expr, node.Types, tt.types)
			continue
		}
		for i := range tt.types {
			if node.Types[i] != tt.types[i] {
				t.Errorf("Parse(%q).Types = %v, want %v", tt.expr, node.Types, tt.types)
				break
			}
		}
	}
}

func TestParseLeafInvalid(t *testing.T) {
	tests := []struct {
		expr   string
		reason string
	}{
		{"", "empty type definition"},
		{"   ", "empty type definition"},
		{"?", "empty type definition"},
		{"|", "invalid type definition"},
		{"||", "invalid type definition"},
		{" | ?", "invalid type definition"},
	}

	for _, tt := range tests {
		node := Parse(tt.expr)
		if node.Kind != InvalidNode {
			t.Errorf("Parse(%q).Kind = %v, want InvalidNode", tt.expr, node.Kind)
			continue
		}
		if node.Reason != tt.reason {
			t.Errorf("Parse(%q).Reason = %q, want %q", tt.expr, node.Reason, tt.reason)
		}
	}
}

func TestParseArray(t *testing.T) {
	node := Parse([]any{"string"})
	if node.Kind != ArrayNode {
		t.Fatalf("Kind = %v, want ArrayNode", node.Kind)
	}
	if node.Elem == nil || len(node.Elem.Types) != 1 || node.Elem.Types[0] != "string" {
		t.Errorf("Elem = %+v, want leaf [string]", node.Elem)
	}

	// []string is accepted as sugar for []any of strings.
	node = Parse([]string{"number"})
	if node.Kind != ArrayNode {
		t.Errorf("Kind = %v, want ArrayNode", node.Kind)
	}
}

func TestParseArrayInvalid(t *testing.T) {
	tests := []struct {
		name   string
		raw    any
		reason string
	}{
		{"empty", []any{}, "empty array schema"},
		{"two elements", []any{"string", "number"}, "array schema must have exactly one element type"},
		{"non-string element", []any{42}, "array element type must be a string, got number"},
		{"invalid element expression", []any{"|"}, "array element type: invalid type definition"},
	}

	for _, tt := range tests {
		node := Parse(tt.raw)
		if node.Kind != InvalidNode {
			t.Errorf("%s: Kind = %v, want InvalidNode", tt.name, node.Kind)
			continue
		}
		if node.Reason != tt.reason {
			t.Errorf("%s: Reason = %q, want %q", tt.name, node.Reason, tt.reason)
		}
	}
}

func TestParseObject(t *testing.T) {
	node := Parse(map[string]any{
		"name":    "string",
		"age":     "number?",
		"tags":    []any{"string"},
		"address": map[string]any{"street": "string"},
	})
	if node.Kind != ObjectNode {
		t.Fatalf("Kind = %v, want ObjectNode", node.Kind)
	}

	// Field order is deterministic (sorted) regardless of map iteration.
	want := []string{"address", "age", "name", "tags"}
	got := node.fieldKeys()
	if len(got) != len(want) {
		t.Fatalf("fieldKeys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fieldKeys() = %v, want %v", got, want)
		}
	}

	if node.Fields["age"].Kind != LeafNode || !node.Fields["age"].Optional {
		t.Errorf("age field = %+v, want optional leaf", node.Fields["age"])
	}
	if node.Fields["address"].Kind != ObjectNode {
		t.Errorf("address field Kind = %v, want ObjectNode", node.Fields["address"].Kind)
	}
}

func TestParseUnsupportedShape(t *testing.T) {
	node := Parse(42)
	if node.Kind != InvalidNode {
		t.Fatalf("Kind = %v, want InvalidNode", node.Kind)
	}
	if node.Reason != "invalid schema definition, expected string, array or object, got number" {
		t.Errorf("Reason = %q", node.Reason)
	}
}
