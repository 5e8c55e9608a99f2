package registry

// Validator decides whether a value belongs to a named type.
//
// Check returns the accepted value on success, usually the input unchanged;
// but a validator may return a narrowed or derived value (the json-string
// validator returns the decoded document, for example). On rejection it
// returns a descriptive error.
//
// Implementations must be pure: no mutation of the input and no observable
// side effects. A validator may compose other validators, including looking
// types up through a matcher it closes over.
type Validator interface {
	Check(value any) (any, error)
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(value any) (any, error)

// Check calls fn(value).
func (fn ValidatorFunc) Check(value any) (any, error) {
	return fn(value)
}
