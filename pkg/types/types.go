// Package types provides the built-in validators seeded into a registry at
// engine construction time.
//
// The built-in set mirrors the kinds a dynamically typed payload can carry
// once it crosses a module boundary. Kinds that only exist in dynamic
// runtimes are mapped to their closest Go notions: an arraybuffer is a
// []byte, a set is a map with empty-struct values, a symbol is the opaque
// Symbol token type declared here.
package types

// Symbol is an opaque token type for data bridged from dynamic runtimes that
// carry interned symbol values. Two symbols are equal when their names are.
type Symbol string

// undefinedMarker is the type of the Undefined sentinel.
type undefinedMarker struct{}

// Undefined marks a value that is deliberately "not there", as opposed to a
// value that is present and null. The built-in "undefined" validator accepts
// nil and this sentinel.
var Undefined = undefinedMarker{}
