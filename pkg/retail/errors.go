package retail

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned when no user matches a name and password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnknownRole is returned for a role string outside the known set.
	ErrUnknownRole = errors.New("unknown role")

	// ErrNotPermitted is returned when the session role may not run an operation.
	ErrNotPermitted = errors.New("operation not permitted for this role")
)

// InputError reports console input that could not be parsed.
type InputError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// Unwrap returns the underlying error.
func (e *InputError) Unwrap() error {
	return e.Err
}
