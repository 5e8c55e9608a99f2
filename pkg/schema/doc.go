// Package schema validates structured values against declarative schemas.
//
// A schema is authored as a plain string-keyed map. Each field's expectation
// is one of three shapes:
//
//   - a type expression string: a single registered type name ("string"), a
//     union ("string|number"), optionally suffixed with "?" to mark the
//     field optional ("string?");
//   - a one-element list naming the required element type of an array
//     (["string"]);
//   - a nested map describing a sub-object.
//
// The external map form is parsed once into a tagged Node tree; validation
// then walks the node tree in lock-step with the candidate value,
// collecting every violation it finds rather than stopping at the first.
// Each error is tagged with a dotted/bracketed path ("user.tags[2]") naming
// the exact location of the violation.
//
// Basic usage:
//
//	checker := schema.NewChecker(matcher)
//	result := checker.Check(map[string]any{
//	    "name": "string",
//	    "age":  "number?",
//	    "tags": []any{"string"},
//	}, value)
//	if !result.Valid {
//	    for _, e := range result.Errors {
//	        fmt.Println(e)
//	    }
//	}
//
// Malformed schema nodes (wrong arity, wrong shapes, empty expressions) are
// reported in the same result list as data mismatches; there is no separate
// schema compilation phase, and Check never fails for data problems.
package schema
