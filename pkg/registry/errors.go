package registry

import "errors"

// ErrAlreadyRegistered is returned when registering a name that already
// exists without the override flag.
var ErrAlreadyRegistered = errors.New("type already registered")

// ErrNotRegistered is returned when unregistering a name that does not exist.
var ErrNotRegistered = errors.New("type not registered")

// ErrUnknownType is returned when a lookup names a type that was never
// registered. Referencing an unknown type is a configuration error, not a
// validation failure.
var ErrUnknownType = errors.New("unknown type")

// ErrMalformedImport is returned when an import payload does not decode to a
// JSON array of type names.
var ErrMalformedImport = errors.New("malformed import payload")
