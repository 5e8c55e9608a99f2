/*
Package typeguard is a runtime type-validation library: given an arbitrary
value and a declared expectation (a type name, a union of type names, or a
nested schema), it decides whether the value conforms and, if not, produces
structured, path-qualified diagnostics.

It is a lightweight stand-in for static typing at module boundaries,
deserialized JSON, handler arguments, external input, wherever compile-time
types are unavailable or insufficient.

# Concept

Type names are opaque, case-insensitive string keys resolved through a
registry. The library seeds the registry with validators for the common
runtime kinds ("string", "number", "array", "date", ...) plus refinement
predicates ("positive", "email", "uuid", ...), and callers can register
their own. On top of single-value matching sits the structural checker: it
walks a schema tree in lock-step with a candidate value, supports unions
("string|number"), optional fields ("string?"), homogeneous arrays
(["string"]) and nested objects, and collects every violation in one pass
instead of stopping at the first.

# Usage

	package main

	import (
		"fmt"

		"github.com/aretw0/typeguard"
	)

	func main() {
		result := typeguard.CheckStructure(map[string]any{
			"name":  "string",
			"age":   "number?",
			"email": "email",
			"tags":  []any{"string"},
		}, map[string]any{
			"name":  "Ada",
			"email": "ada@example.com",
			"tags":  []any{"ops", 7},
		})

		if !result.Valid {
			for _, e := range result.Errors {
				fmt.Println(e) // key "tags[1]": expected string, got number
			}
		}
	}

Single values work the same way without a schema:

	ok, _ := typeguard.Is(42, "string|number")      // true
	v, err := typeguard.IsType(`{"a":1}`, "json-string") // decoded document

For isolated registries (tests, multi-tenant setups) construct an Engine
with New instead of using the package-level default.
*/
package typeguard
