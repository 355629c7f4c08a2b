package bridge

import (
	"fmt"
	"reflect"
	"time"
)

// Invocation is one raw delegate callback as the proxy received it.
type Invocation struct {
	Seq   uint64
	Event string
	Args  []any
	At    time.Time
}

// Void is the payload of events that carry nothing beyond the sender.
type Void = struct{}

// Frame is the argument view handed to a decoder: the invocation's
// arguments with the leading sender references skipped.
type Frame struct {
	Event string
	skip  int
	args  []any
}

func newFrame(inv Invocation, skip int) Frame {
	return Frame{Event: inv.Event, skip: skip, args: inv.Args}
}

// NewFrame builds a frame directly, mostly for decoder tests.
func NewFrame(event string, skip int, args ...any) Frame {
	return Frame{Event: event, skip: skip, args: args}
}

// Len is the number of payload arguments after the skipped senders.
func (f Frame) Len() int {
	if n := len(f.args) - f.skip; n > 0 {
		return n
	}
	return 0
}

// Arg casts payload argument pos (0 is the first argument after the senders).
func Arg[T any](f Frame, pos int) (T, error) {
	var zero T
	abs := f.skip + pos
	if pos < 0 || abs >= len(f.args) {
		return zero, &TypeMismatchError{Event: f.Event, Position: abs, Expected: typeName[T](), Got: "<missing>"}
	}
	v, ok := f.args[abs].(T)
	if !ok {
		return zero, &TypeMismatchError{Event: f.Event, Position: abs, Expected: typeName[T](), Got: fmt.Sprintf("%T", f.args[abs])}
	}
	return v, nil
}

// Enum is satisfied by SDK enumerations delivered as raw ints.
type Enum interface {
	~int
	Valid() bool
}

// EnumArg reads a raw int argument and decodes it into E. Values outside
// E's known variants are an error, never a default.
func EnumArg[E Enum](f Frame, pos int) (E, error) {
	var zero E
	raw, err := Arg[int](f, pos)
	if err != nil {
		if tm, ok := err.(*TypeMismatchError); ok {
			tm.Expected = typeName[E]() + " (int)"
		}
		return zero, err
	}
	e := E(raw)
	if !e.Valid() {
		return zero, &EnumRangeError{Event: f.Event, Position: f.skip + pos, Enum: typeName[E](), Value: raw}
	}
	return e, nil
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
