package types

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/aretw0/typeguard/pkg/kindof"
	"github.com/aretw0/typeguard/pkg/registry"
	"github.com/google/uuid"
)

var alphanumericRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// RegisterExtended seeds r with the refinement predicates that sit on top of
// the built-in kinds: narrowed numbers, shaped strings. They compose with
// the built-ins through the same registry, so schema authors can write
// "positive" or "string|email" without extra wiring.
func RegisterExtended(r *registry.Registry) error {
	return registerAll(r, Extended())
}

// Extended returns the refinement predicate set.
func Extended() []Builtin {
	return []Builtin{
		{"integer", []string{"i", "int"}, checkInteger},
		{"float", []string{"fl"}, checkFloat},
		{"positive", []string{"pos"}, checkPositive},
		{"negative", []string{"neg"}, checkNegative},
		{"nonzero", []string{"nz"}, checkNonzero},
		{"nonempty-string", []string{"nes"}, checkNonemptyString},
		{"numeric-string", []string{"ns"}, checkNumericString},
		{"alphanumeric", []string{"alnum"}, checkAlphanumeric},
		{"email", nil, checkEmail},
		{"url", nil, checkURL},
		{"uuid", nil, checkUUID},
		{"iso-date", []string{"iso8601"}, checkISODate},
	}
}

func checkInteger(value any) (any, error) {
	f, ok := toFloat(value)
	if !ok {
		return nil, mismatch("integer", value)
	}
	// JSON unmarshals every number as float64; accept whole floats.
	if f != float64(int64(f)) {
		return nil, fmt.Errorf("expected integer, got float that is not a whole number")
	}
	return value, nil
}

func checkFloat(value any) (any, error) {
	if _, ok := toFloat(value); !ok {
		return nil, mismatch("float", value)
	}
	return value, nil
}

func checkPositive(value any) (any, error) {
	f, ok := toFloat(value)
	if !ok {
		return nil, mismatch("positive number", value)
	}
	if f <= 0 {
		return nil, fmt.Errorf("expected positive number, got %v", value)
	}
	return value, nil
}

func checkNegative(value any) (any, error) {
	f, ok := toFloat(value)
	if !ok {
		return nil, mismatch("negative number", value)
	}
	if f >= 0 {
		return nil, fmt.Errorf("expected negative number, got %v", value)
	}
	return value, nil
}

func checkNonzero(value any) (any, error) {
	f, ok := toFloat(value)
	if !ok {
		return nil, mismatch("nonzero number", value)
	}
	if f == 0 {
		return nil, fmt.Errorf("expected nonzero number, got %v", value)
	}
	return value, nil
}

func checkNonemptyString(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, mismatch("nonempty string", value)
	}
	if s == "" {
		return nil, fmt.Errorf("expected nonempty string, got empty string")
	}
	return value, nil
}

func checkNumericString(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, mismatch("numeric string", value)
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return nil, fmt.Errorf("expected numeric string, got %q", s)
	}
	return value, nil
}

func checkAlphanumeric(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, mismatch("alphanumeric string", value)
	}
	if !alphanumericRe.MatchString(s) {
		return nil, fmt.Errorf("expected alphanumeric string, got %q", s)
	}
	return value, nil
}

func checkEmail(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, mismatch("email address", value)
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return nil, fmt.Errorf("expected email address, got %q", s)
	}
	return value, nil
}

func checkURL(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, mismatch("url", value)
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("expected url, got %q", s)
	}
	return value, nil
}

func checkUUID(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, mismatch("uuid", value)
	}
	if _, err := uuid.Parse(s); err != nil {
		return nil, fmt.Errorf("expected uuid, got %q", s)
	}
	return value, nil
}

func checkISODate(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected iso-date string, got %s", kindof.Kind(value))
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return value, nil
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return value, nil
	}
	return nil, fmt.Errorf("expected iso-date string, got %q", s)
}
