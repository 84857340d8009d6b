package lerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		err      *Error
		expected string
	}{
		{&Error{Kind: UnknownFunction, Func: "subtract"}, `function "subtract" not found`},
		{
			&Error{Kind: ArityMismatch, Func: "addNumbers", ExpectedCount: 2, ReceivedCount: 1},
			`wrong number of arguments to "addNumbers": expected 2, received 1`,
		},
		{
			&Error{Kind: ArgumentTypeMismatch, Func: "addNumbers", Position: 1, Expected: "number", Received: "string"},
			`invalid type for argument 1 in "addNumbers": expected number, received string`,
		},
		{
			&Error{Kind: ArgumentTypeMismatch, Expected: "number", Received: "type string"},
			`invalid type: expected number, received type string`,
		},
		{&Error{Kind: UnknownType, Name: "bool"}, `custom type "bool" not found`},
		{&Error{Kind: UnsupportedExpression}, "unsupported expression"},
		{&Error{Kind: UnsupportedExpression, Received: "5 (number)"}, "unsupported expression: 5 (number)"},
		{&Error{Kind: ErrorKind(42)}, "check failed: ErrorKind(42)"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, tc.err.Error())
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "UnknownFunction", UnknownFunction.String())
	assert.Equal(t, "UnsupportedExpression", UnsupportedExpression.String())
	assert.Equal(t, "ErrorKind(9)", ErrorKind(9).String())
}

func TestKindOf(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("checking: %w", &Error{Kind: UnknownType, Name: "bool"})
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, UnknownType, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestIs(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("checking: %w", &Error{Kind: ArityMismatch, Func: "f", ExpectedCount: 1})
	assert.ErrorIs(t, err, &Error{Kind: ArityMismatch})
	assert.NotErrorIs(t, err, &Error{Kind: UnknownFunction})
}
