package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/typeguard/pkg/kindof"
	"github.com/aretw0/typeguard/pkg/match"
)

// NodeKind discriminates the shapes a schema node can take.
type NodeKind int

const (
	// LeafNode is a type expression: one or more type names, optionally
	// marked optional.
	LeafNode NodeKind = iota
	// ArrayNode requires an array whose every element satisfies a leaf
	// type expression.
	ArrayNode
	// ObjectNode requires a nested object with its own field schemas.
	ObjectNode
	// InvalidNode marks a malformed schema shape. The parse never fails;
	// the defect is carried here and surfaced as a validation error at
	// the node's path.
	InvalidNode
)

// Node is one position in the parsed schema tree: a tagged union over the
// three authorable shapes plus the invalid marker. Nodes are immutable once
// parsed.
type Node struct {
	Kind NodeKind

	// Leaf fields. Types holds the normalized union candidates; Optional is
	// set when the raw expression ended in "?".
	Types    []string
	Optional bool

	// ArrayNode: the element type expression.
	Elem *Node

	// ObjectNode: field schemas and their deterministic iteration order.
	Fields map[string]*Node
	keys   []string

	// InvalidNode: why this shape cannot be satisfied.
	Reason string
}

// fieldKeys returns the object field names in sorted order. The external
// map form carries no insertion order, so sorting is what keeps error
// ordering stable between runs.
func (n *Node) fieldKeys() []string {
	return n.keys
}

func invalid(reason string) *Node {
	return &Node{Kind: InvalidNode, Reason: reason}
}

// Parse converts the external schema representation into a Node tree. It
// never fails: shapes that cannot be satisfied parse into InvalidNode
// entries carrying the reason, which validation reports at their path.
func Parse(raw any) *Node {
	switch v := raw.(type) {
	case string:
		return parseLeaf(v)
	case []any:
		return parseArray(v)
	case []string:
		anys := make([]any, len(v))
		for i, s := range v {
			anys[i] = s
		}
		return parseArray(anys)
	case map[string]any:
		return parseObject(v)
	default:
		return invalid(fmt.Sprintf("invalid schema definition, expected string, array or object, got %s", kindof.Kind(raw)))
	}
}

func parseLeaf(expr string) *Node {
	trimmed := strings.TrimSpace(expr)

	optional := strings.HasSuffix(trimmed, "?")
	if optional {
		trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "?"))
	}

	if trimmed == "" {
		return invalid("empty type definition")
	}

	types := match.ExpandTypes(trimmed)
	if len(types) == 0 {
		return invalid("invalid type definition")
	}

	return &Node{Kind: LeafNode, Types: types, Optional: optional}
}

func parseArray(elems []any) *Node {
	switch {
	case len(elems) == 0:
		return invalid("empty array schema")
	case len(elems) > 1:
		return invalid("array schema must have exactly one element type")
	}

	expr, ok := elems[0].(string)
	if !ok {
		return invalid(fmt.Sprintf("array element type must be a string, got %s", kindof.Kind(elems[0])))
	}

	elem := parseLeaf(expr)
	if elem.Kind == InvalidNode {
		return invalid(fmt.Sprintf("array element type: %s", elem.Reason))
	}
	return &Node{Kind: ArrayNode, Elem: elem}
}

func parseObject(fields map[string]any) *Node {
	node := &Node{
		Kind:   ObjectNode,
		Fields: make(map[string]*Node, len(fields)),
		keys:   make([]string, 0, len(fields)),
	}
	for key := range fields {
		node.keys = append(node.keys, key)
	}
	sort.Strings(node.keys)

	for _, key := range node.keys {
		node.Fields[key] = Parse(fields[key])
	}
	return node
}
