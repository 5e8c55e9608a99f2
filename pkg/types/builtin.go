package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"regexp"
	"time"

	"github.com/aretw0/typeguard/pkg/kindof"
	"github.com/aretw0/typeguard/pkg/registry"
)

// Builtin describes one registrable validator: a canonical name, its short
// aliases, and the check itself.
type Builtin struct {
	Name    string
	Aliases []string
	Check   registry.ValidatorFunc
}

// RegisterBuiltins seeds r with the built-in type set under their canonical
// names and aliases. It fails on the first name collision.
func RegisterBuiltins(r *registry.Registry) error {
	return registerAll(r, Builtins())
}

func registerAll(r *registry.Registry, set []Builtin) error {
	for _, b := range set {
		if err := r.Register(b.Name, b.Check, false); err != nil {
			return err
		}
		for _, alias := range b.Aliases {
			if err := r.Register(alias, b.Check, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// Builtins returns the built-in type set. The slice is freshly allocated on
// every call; callers may reorder it freely.
func Builtins() []Builtin {
	return []Builtin{
		{"string", []string{"s", "str"}, checkString},
		{"number", []string{"n", "num"}, checkNumber},
		{"boolean", []string{"b", "bool"}, checkBoolean},
		{"array", []string{"a", "arr"}, checkArray},
		{"object", []string{"o", "obj"}, checkObject},
		{"null", []string{"nul"}, checkNull},
		{"undefined", []string{"u", "undef"}, checkUndefined},
		{"function", []string{"f", "fn"}, checkFunction},
		{"map", []string{"m"}, checkMap},
		{"set", []string{"st"}, checkSet},
		{"date", []string{"d"}, checkDate},
		{"regexp", []string{"r", "regex"}, checkRegexp},
		{"symbol", []string{"sym"}, checkSymbol},
		{"bigint", []string{"bi", "big"}, checkBigInt},
		{"arraybuffer", []string{"ab", "buffer"}, checkArrayBuffer},
		{"typedarray", []string{"ta"}, checkTypedArray},
		{"dataview", []string{"dv"}, checkDataView},
		{"dom-element", []string{"dom", "el"}, checkDOMElement},
		{"json-string", []string{"js", "json"}, checkJSONString},
	}
}

func mismatch(want string, value any) error {
	return fmt.Errorf("expected %s, got %s", want, kindof.Kind(value))
}

func checkString(value any) (any, error) {
	if _, ok := value.(string); ok {
		return value, nil
	}
	return nil, mismatch("string", value)
}

func checkNumber(value any) (any, error) {
	if _, ok := toFloat(value); ok {
		return value, nil
	}
	return nil, mismatch("number", value)
}

func checkBoolean(value any) (any, error) {
	if _, ok := value.(bool); ok {
		return value, nil
	}
	return nil, mismatch("boolean", value)
}

func checkArray(value any) (any, error) {
	if kindof.Kind(value) == kindof.Array {
		return value, nil
	}
	return nil, mismatch("array", value)
}

func checkObject(value any) (any, error) {
	if kindof.Kind(value) == kindof.Object {
		return value, nil
	}
	return nil, mismatch("object", value)
}

func checkNull(value any) (any, error) {
	if kindof.IsNil(value) {
		return value, nil
	}
	return nil, mismatch("null", value)
}

func checkUndefined(value any) (any, error) {
	if value == nil {
		return value, nil
	}
	if _, ok := value.(undefinedMarker); ok {
		return value, nil
	}
	return nil, mismatch("undefined", value)
}

func checkFunction(value any) (any, error) {
	if kindof.Kind(value) == kindof.Function {
		return value, nil
	}
	return nil, mismatch("function", value)
}

func checkMap(value any) (any, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Map && !rv.IsNil() {
		return value, nil
	}
	return nil, mismatch("map", value)
}

func checkSet(value any) (any, error) {
	if kindof.Kind(value) == kindof.Set {
		return value, nil
	}
	return nil, mismatch("set", value)
}

func checkDate(value any) (any, error) {
	switch v := value.(type) {
	case time.Time:
		return value, nil
	case *time.Time:
		if v != nil {
			return value, nil
		}
	}
	return nil, mismatch("date", value)
}

func checkRegexp(value any) (any, error) {
	if re, ok := value.(*regexp.Regexp); ok && re != nil {
		return value, nil
	}
	return nil, mismatch("regexp", value)
}

func checkSymbol(value any) (any, error) {
	if _, ok := value.(Symbol); ok {
		return value, nil
	}
	return nil, mismatch("symbol", value)
}

func checkBigInt(value any) (any, error) {
	switch v := value.(type) {
	case big.Int:
		return value, nil
	case *big.Int:
		if v != nil {
			return value, nil
		}
	}
	return nil, mismatch("bigint", value)
}

func checkArrayBuffer(value any) (any, error) {
	if b, ok := value.([]byte); ok && b != nil {
		return value, nil
	}
	return nil, mismatch("arraybuffer", value)
}

func checkTypedArray(value any) (any, error) {
	rv := reflect.ValueOf(value)
	if (rv.Kind() == reflect.Slice && !rv.IsNil()) || rv.Kind() == reflect.Array {
		switch rv.Type().Elem().Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return value, nil
		}
	}
	return nil, mismatch("typedarray", value)
}

func checkDataView(value any) (any, error) {
	switch v := value.(type) {
	case *bytes.Buffer:
		if v != nil {
			return value, nil
		}
	case *bytes.Reader:
		if v != nil {
			return value, nil
		}
	}
	return nil, mismatch("dataview", value)
}

// checkDOMElement accepts a decoded element node: a string-keyed map whose
// "tag" (or "tagName") entry is a non-empty string. Markup parsed into a
// generic tree is the closest thing to an element this side of a browser.
func checkDOMElement(value any) (any, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, mismatch("dom-element", value)
	}
	for _, key := range []string{"tag", "tagName"} {
		if tag, ok := m[key].(string); ok && tag != "" {
			return value, nil
		}
	}
	return nil, fmt.Errorf("expected dom-element, got object without a tag name")
}

// checkJSONString narrows: on success it returns the decoded document, not
// the raw string.
func checkJSONString(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, mismatch("json-string", value)
	}
	var decoded any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		return nil, fmt.Errorf("expected json-string, got string that does not parse: %v", err)
	}
	return decoded, nil
}

// toFloat widens any numeric value to float64. The second return value is
// false for non-numeric values and for bools.
func toFloat(value any) (float64, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
