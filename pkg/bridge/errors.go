package bridge

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch   = errors.New("bridge: argument type mismatch")
	ErrEnumOutOfRange = errors.New("bridge: enum value out of range")
	ErrReleased       = errors.New("bridge: dispatcher released")
)

// TypeMismatchError reports a delegate argument that did not have the type the
// event decoder expected. Position counts from the first raw argument,
// sender included.
type TypeMismatchError struct {
	Event    string
	Position int
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("bridge: %s: argument %d: expected %s, got %s", e.Event, e.Position, e.Expected, e.Got)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// EnumRangeError reports a raw integer with no matching enum variant. It
// means the SDK knows variants this adapter does not.
type EnumRangeError struct {
	Event    string
	Position int
	Enum     string
	Value    int
}

func (e *EnumRangeError) Error() string {
	return fmt.Sprintf("bridge: %s: argument %d: %d is not a known %s", e.Event, e.Position, e.Value, e.Enum)
}

// matches both ErrEnumOutOfRange and ErrTypeMismatch
func (e *EnumRangeError) Unwrap() []error {
	return []error{ErrEnumOutOfRange, ErrTypeMismatch}
}
