package schema

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/aretw0/typeguard/pkg/kindof"
	"github.com/aretw0/typeguard/pkg/match"
)

// Result is the outcome of one Check call. Valid is true exactly when
// Errors is empty. Errors are ordered by traversal: schema key order first,
// then array index order, depth-first.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Checker walks schema trees against candidate values. It holds no state of
// its own beyond the matcher, so one Checker can serve any number of calls.
type Checker struct {
	matcher *match.Matcher
}

// NewChecker creates a checker that resolves leaf type names through m.
func NewChecker(m *match.Matcher) *Checker {
	return &Checker{matcher: m}
}

// CheckOption adjusts one Check call.
type CheckOption func(*checkConfig)

type checkConfig struct {
	strict bool
	path   string
}

// WithStrict additionally rejects value keys that the schema does not
// declare.
func WithStrict() CheckOption {
	return func(c *checkConfig) { c.strict = true }
}

// WithPath prefixes every reported path, for callers validating a fragment
// of a larger document.
func WithPath(prefix string) CheckOption {
	return func(c *checkConfig) { c.path = prefix }
}

// Check validates value against schema and returns every violation found.
//
// schema is either the external map form (map[string]any) or a *Node
// obtained from Parse; value must be a non-null, non-array object
// (map[string]any). Violations of those two guards are themselves reported
// in the result rather than raised. Check never fails for data problems and
// mutates neither argument.
func (c *Checker) Check(schema any, value any, opts ...CheckOption) Result {
	var cfg checkConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var errs []string

	node := guardSchema(schema, &errs)
	obj := guardValue(value, &errs)
	if len(errs) > 0 {
		return Result{Valid: false, Errors: errs}
	}

	c.checkObject(node, obj, cfg.path, cfg.strict, &errs)
	return Result{Valid: len(errs) == 0, Errors: errs}
}

func guardSchema(schema any, errs *[]string) *Node {
	switch s := schema.(type) {
	case *Node:
		if s != nil && s.Kind == ObjectNode {
			return s
		}
	case map[string]any:
		if s != nil {
			return parseObject(s)
		}
	}
	*errs = append(*errs, fmt.Sprintf("Invalid schema: must be a non-null object, got %s", kindof.Kind(schema)))
	return nil
}

func guardValue(value any, errs *[]string) map[string]any {
	if obj, ok := value.(map[string]any); ok && obj != nil {
		return obj
	}
	*errs = append(*errs, fmt.Sprintf("Invalid object: must be a non-null object, got %s", kindof.Kind(value)))
	return nil
}

// checkObject validates every declared field, then, in strict mode, sweeps
// for undeclared keys. No short-circuiting: every field is checked even
// after earlier failures so one pass surfaces the complete violation set.
func (c *Checker) checkObject(node *Node, value map[string]any, path string, strict bool, errs *[]string) {
	for _, key := range node.fieldKeys() {
		field := node.Fields[key]
		fullPath := joinPath(path, key)
		v, present := value[key]

		switch field.Kind {
		case LeafNode:
			c.checkLeaf(field, v, present, fullPath, errs)

		case ArrayNode:
			if !present {
				*errs = append(*errs, missingKey(fullPath))
				continue
			}
			c.checkArray(field, v, fullPath, errs)

		case ObjectNode:
			if !present {
				*errs = append(*errs, missingKey(fullPath))
				continue
			}
			nested, ok := v.(map[string]any)
			if !ok || nested == nil {
				*errs = append(*errs, fmt.Sprintf("key %q: expected object, got %s", fullPath, kindof.Kind(v)))
				continue
			}
			c.checkObject(field, nested, fullPath, strict, errs)

		case InvalidNode:
			if !present {
				*errs = append(*errs, missingKey(fullPath))
				continue
			}
			*errs = append(*errs, fmt.Sprintf("key %q: %s", fullPath, field.Reason))
		}
	}

	if strict {
		extra := make([]string, 0)
		for key := range value {
			if _, declared := node.Fields[key]; !declared {
				extra = append(extra, key)
			}
		}
		sort.Strings(extra)
		for _, key := range extra {
			*errs = append(*errs, fmt.Sprintf("unexpected key %q", joinPath(path, key)))
		}
	}
}

func (c *Checker) checkLeaf(field *Node, v any, present bool, fullPath string, errs *[]string) {
	if !present {
		if !field.Optional {
			*errs = append(*errs, missingKey(fullPath))
		}
		return
	}

	// Null satisfies an optional field the same way absence does.
	if v == nil && field.Optional {
		return
	}

	ok, err := c.matcher.Matches(v, field.Types...)
	if err != nil {
		// Unregistered type name: a schema configuration mistake, reported
		// at this path instead of escaping the call.
		*errs = append(*errs, fmt.Sprintf("key %q: %v", fullPath, err))
		return
	}
	if !ok {
		*errs = append(*errs, leafMismatch(fullPath, field.Types, v))
	}
}

func (c *Checker) checkArray(field *Node, v any, fullPath string, errs *[]string) {
	rv := reflect.ValueOf(v)
	if v == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || (rv.Kind() == reflect.Slice && rv.IsNil()) {
		*errs = append(*errs, fmt.Sprintf("key %q: expected array, got %s", fullPath, kindof.Kind(v)))
		return
	}

	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		elemPath := fmt.Sprintf("%s[%d]", fullPath, i)

		ok, err := c.matcher.Matches(elem, field.Elem.Types...)
		if err != nil {
			*errs = append(*errs, fmt.Sprintf("key %q: %v", elemPath, err))
			continue
		}
		if !ok {
			*errs = append(*errs, leafMismatch(elemPath, field.Elem.Types, elem))
		}
	}
}

func missingKey(path string) string {
	return fmt.Sprintf("missing required key %q", path)
}

func leafMismatch(path string, types []string, v any) string {
	return fmt.Sprintf("key %q: expected %s, got %s", path, strings.Join(types, "|"), kindof.Kind(v))
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
