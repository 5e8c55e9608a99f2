package types

import (
	"bytes"
	"math/big"
	"regexp"
	"testing"
	"time"
)

func checkByName(t *testing.T, name string) Builtin {
	t.Helper()
	for _, b := range Builtins() {
		if b.Name == name {
			return b
		}
	}
	for _, b := range Extended() {
		if b.Name == name {
			return b
		}
	}
	t.Fatalf("no builtin named %q", name)
	return Builtin{}
}

func TestBuiltinKinds(t *testing.T) {
	tests := []struct {
		typ     string
		value   any
		wantErr bool
	}{
		{"string", "hello", false},
		{"string", "", false},
		{"string", 42, true},

		{"number", 42, false},
		{"number", 3.14, false},
		{"number", uint8(1), false},
		{"number", "42", true},
		{"number", true, true},

		{"boolean", true, false},
		{"boolean", 1, true},

		{"array", []any{1, "a"}, false},
		{"array", []string{"a"}, false},
		{"array", "not array", true},
		{"array", []byte("bytes"), true}, // arraybuffer, not array

		{"object", map[string]any{"a": 1}, false},
		{"object", struct{ A int }{1}, false},
		{"object", []any{}, true},
		{"object", nil, true},

		{"null", nil, false},
		{"null", map[string]any(nil), false},
		{"null", 0, true},

		{"undefined", nil, false},
		{"undefined", Undefined, false},
		{"undefined", "", true},

		{"function", func() {}, false},
		{"function", "fn", true},

		{"map", map[int]string{1: "a"}, false},
		{"map", map[string]any{"a": 1}, false},
		{"map", []any{}, true},

		{"set", map[string]struct{}{"a": {}}, false},
		{"set", map[string]bool{"a": true}, true},

		{"date", time.Now(), false},
		{"date", "2024-01-01", true},

		{"regexp", regexp.MustCompile(`a+`), false},
		{"regexp", "a+", true},

		{"symbol", Symbol("token"), false},
		{"symbol", "token", true},

		{"bigint", big.NewInt(9), false},
		{"bigint", 9, true},

		{"arraybuffer", []byte{1, 2}, false},
		{"arraybuffer", []int{1, 2}, true},

		{"typedarray", []int{1, 2}, false},
		{"typedarray", []float64{1.5}, false},
		{"typedarray", []string{"a"}, true},

		{"dataview", bytes.NewBuffer(nil), false},
		{"dataview", bytes.NewReader([]byte{1}), false},
		{"dataview", []byte{1}, true},

		{"dom-element", map[string]any{"tag": "div"}, false},
		{"dom-element", map[string]any{"tagName": "SPAN"}, false},
		{"dom-element", map[string]any{"id": "x"}, true},
		{"dom-element", "div", true},
	}

	for _, tt := range tests {
		b := checkByName(t, tt.typ)
		_, err := b.Check(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Check(%v) error = %v, wantErr %v", tt.typ, tt.value, err, tt.wantErr)
		}
	}
}

func TestJSONStringNarrows(t *testing.T) {
	b := checkByName(t, "json-string")

	got, err := b.Check(`{"a": 1}`)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	decoded, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("Check() = %T, want map[string]any", got)
	}
	if decoded["a"] != float64(1) {
		t.Errorf("decoded[a] = %v, want 1", decoded["a"])
	}

	if _, err := b.Check(`{broken`); err == nil {
		t.Error("Check() should reject malformed JSON")
	}
	if _, err := b.Check(42); err == nil {
		t.Error("Check() should reject non-strings")
	}
}

func TestExtendedPredicates(t *testing.T) {
	tests := []struct {
		typ     string
		value   any
		wantErr bool
	}{
		{"integer", 42, false},
		{"integer", float64(42), false}, // JSON numbers arrive as float64
		{"integer", 42.5, true},
		{"integer", "42", true},

		{"float", 42.5, false},
		{"float", 42, false},
		{"float", "x", true},

		{"positive", 1, false},
		{"positive", 0, true},
		{"positive", -1, true},

		{"negative", -1, false},
		{"negative", 0, true},
		{"negative", 2, true},

		{"nonzero", 5, false},
		{"nonzero", 0, true},

		{"nonempty-string", "x", false},
		{"nonempty-string", "", true},
		{"nonempty-string", 1, true},

		{"numeric-string", "3.14", false},
		{"numeric-string", "abc", true},

		{"alphanumeric", "abc123", false},
		{"alphanumeric", "abc-123", true},
		{"alphanumeric", "", true},

		{"email", "dev@example.com", false},
		{"email", "not-an-email", true},
		{"email", 7, true},

		{"url", "https://example.com/path", false},
		{"url", "example.com", true},

		{"uuid", "9b2cfb34-a44e-4d95-8c1a-5d88f8a4c7a1", false},
		{"uuid", "not-a-uuid", true},

		{"iso-date", "2024-06-01T12:00:00Z", false},
		{"iso-date", "2024-06-01", false},
		{"iso-date", "June 1st", true},
	}

	for _, tt := range tests {
		b := checkByName(t, tt.typ)
		_, err := b.Check(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Check(%v) error = %v, wantErr %v", tt.typ, tt.value, err, tt.wantErr)
		}
	}
}
