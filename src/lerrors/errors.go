// Package lerrors holds the failures a type check can end in so that callers
// can tell them apart by kind and read the details that identify them.
package lerrors

import (
	"errors"
	"fmt"
)

type (
	// ErrorKind is an enum to describe why a check failed.
	ErrorKind int
	// Error captures every failure raised by the checker. Only the fields that
	// are relevant to the Kind are set.
	Error struct {
		Kind ErrorKind
		// Func is the function being called.
		Func string
		// Name is the unknown type name for UnknownType.
		Name string
		// Position is the 1-based argument position for ArgumentTypeMismatch. It
		// is zero when the checked expression itself had the wrong type.
		Position int
		// Expected is the expected type name for ArgumentTypeMismatch.
		Expected string
		// Received describes what was actually passed.
		Received      string
		ExpectedCount int
		ReceivedCount int
	}
)

const (
	// UnknownFunction is raised when a call targets an unregistered function.
	UnknownFunction ErrorKind = iota
	// ArityMismatch is raised when the argument count disagrees with the declaration.
	ArityMismatch
	// ArgumentTypeMismatch is raised when an argument fails its type check.
	ArgumentTypeMismatch
	// UnknownType is raised when a type reference names an unregistered type.
	UnknownType
	// UnsupportedExpression is raised for expressions the checker cannot handle.
	UnsupportedExpression
)

var kindNames = map[ErrorKind]string{
	UnknownFunction:       "UnknownFunction",
	ArityMismatch:         "ArityMismatch",
	ArgumentTypeMismatch:  "ArgumentTypeMismatch",
	UnknownType:           "UnknownType",
	UnsupportedExpression: "UnsupportedExpression",
}

func (kind ErrorKind) String() string {
	if name, ok := kindNames[kind]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(kind))
}

func (err *Error) Error() string {
	switch err.Kind {
	case UnknownFunction:
		return fmt.Sprintf("function %q not found", err.Func)
	case ArityMismatch:
		return fmt.Sprintf(
			"wrong number of arguments to %q: expected %v, received %v",
			err.Func,
			err.ExpectedCount,
			err.ReceivedCount,
		)
	case ArgumentTypeMismatch:
		if err.Position == 0 {
			return fmt.Sprintf("invalid type: expected %v, received %v", err.Expected, err.Received)
		}
		return fmt.Sprintf(
			"invalid type for argument %v in %q: expected %v, received %v",
			err.Position,
			err.Func,
			err.Expected,
			err.Received,
		)
	case UnknownType:
		return fmt.Sprintf("custom type %q not found", err.Name)
	case UnsupportedExpression:
		if err.Received != "" {
			return fmt.Sprintf("unsupported expression: %v", err.Received)
		}
		return "unsupported expression"
	default:
		return fmt.Sprintf("check failed: %v", err.Kind)
	}
}

// Is matches any other *Error of the same kind so that errors.Is can be used
// with a bare &Error{Kind: ...} target.
func (err *Error) Is(target error) bool {
	var other *Error
	return errors.As(target, &other) && other.Kind == err.Kind
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Kind, true
	}
	return 0, false
}
