// Package kindof classifies runtime values into the coarse kind names used
// in validation diagnostics ("null", "array", "date", ...). It refines the
// buckets reflect would otherwise collapse (a time.Time is reported as
// "date" rather than "struct", a map[string]struct{} as "set" rather than
// "map") so error messages name what the caller actually passed.
//
// The classification is purely informational. Validation decisions are made
// by registered validators, never by this package.
package kindof

import (
	"math/big"
	"reflect"
	"regexp"
	"time"
)

// Kind names returned by Kind. Kept as plain strings so they can be embedded
// directly in error messages.
const (
	Null     = "null"
	Array    = "array"
	Bytes    = "bytes"
	String   = "string"
	Boolean  = "boolean"
	Number   = "number"
	BigInt   = "bigint"
	Date     = "date"
	Regexp   = "regexp"
	Map      = "map"
	Set      = "set"
	Object   = "object"
	Function = "function"
)

// Kind returns the coarse kind name of value.
func Kind(value any) string {
	if value == nil {
		return Null
	}

	switch value.(type) {
	case string:
		return String
	case bool:
		return Boolean
	case time.Time, *time.Time:
		return Date
	case *regexp.Regexp:
		return Regexp
	case big.Int, *big.Int:
		return BigInt
	case []byte:
		return Bytes
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null
		}
		return Kind(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return Null
		}
		return Array
	case reflect.Array:
		return Array
	case reflect.Map:
		if rv.IsNil() {
			return Null
		}
		// A map with empty-struct values is the idiomatic Go set.
		if rv.Type().Elem() == reflect.TypeOf(struct{}{}) {
			return Set
		}
		if rv.Type().Key().Kind() == reflect.String {
			return Object
		}
		return Map
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.Bool:
		return Boolean
	case reflect.String:
		return String
	case reflect.Func:
		if rv.IsNil() {
			return Null
		}
		return Function
	case reflect.Struct:
		return Object
	case reflect.Chan:
		if rv.IsNil() {
			return Null
		}
		return rv.Kind().String()
	default:
		return rv.Kind().String()
	}
}

// IsNil reports whether value is nil, either as an untyped nil interface or
// as a nil pointer, map, slice, channel or function wrapped in an interface.
func IsNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
