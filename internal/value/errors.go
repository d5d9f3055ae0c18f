package value

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrDivideByZero is returned when dividing a Num by zero.
var ErrDivideByZero = errors.New("division by zero")

// TypeError indicates operand variants incompatible with an operation.
// Right is KindUnit and Unary true for single operand operations.
type TypeError struct {
	Op          string
	Left, Right Kind
	Unary       bool
}

func (err TypeError) Error() string {
	if err.Unary {
		return fmt.Sprintf("cannot %v %v", err.Op, err.Left)
	}
	return fmt.Sprintf("cannot %v %v and %v", err.Op, err.Left, err.Right)
}

func typeError(op string, a, b Value) TypeError {
	return TypeError{Op: op, Left: KindOf(a), Right: KindOf(b)}
}

// BoundsError indicates an array index out of range. Index is the
// requested index after truncation, kept as a float so that huge indexes
// are reported as given.
type BoundsError struct {
	Index float64
	Len   int
}

func (err BoundsError) Error() string {
	return "index " + strconv.FormatFloat(err.Index, 'f', -1, 64) + " out of bounds"
}

// KeyError indicates that no map entry matched a key.
type KeyError struct {
	Key Value
}

func (err KeyError) Error() string {
	return fmt.Sprintf("key %v not found", Format(err.Key))
}

// NameError indicates an unbound variable.
type NameError struct {
	Name string
}

func (err NameError) Error() string {
	return fmt.Sprintf("variable %v not found", err.Name)
}

// FutureError is returned when awaiting a Pending or Rejected Future.
type FutureError struct {
	State  FutureState
	Reason string
}

func (err FutureError) Error() string {
	if err.State == Rejected {
		return err.Reason
	}
	return "future still pending"
}
