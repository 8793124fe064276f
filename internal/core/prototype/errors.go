package prototype

import (
	"errors"
	"fmt"
)

var (
	ErrPrototypeNotFound = errors.New("prototype not found")
	ErrNilPrototype      = errors.New("nil prototype registered")
	ErrCloneFailed       = errors.New("clone failed")
	ErrUnknownAttribute  = errors.New("unknown attribute")
	ErrInvalidAttribute  = errors.New("invalid attribute value")
	ErrKindMismatch      = errors.New("prototype kind mismatch")
)

// CreationError is the only error type returned by Registry.Create. The
// underlying cause stays reachable through errors.Is and errors.As.
type CreationError struct {
	Name string
	Err  error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("error creating monster %q: %v", e.Name, e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}
