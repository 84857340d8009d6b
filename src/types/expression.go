package types

import (
	"fmt"
	"strings"
)

type (
	// Expression is anything that can be submitted for checking. The set of
	// implementations is closed: *CallExpression, *Type and Value.
	Expression interface {
		fmt.Stringer
		exprNode()
	}
	// CallExpression is a request to call a named function with ordered arguments.
	CallExpression struct {
		FuncName string
		Args     []Expression
	}
	// Value is a raw runtime value passed directly as an argument.
	Value struct{ Val any }
)

func (*CallExpression) exprNode() {}
func (*Type) exprNode()           {}
func (Value) exprNode()           {}

// Call creates a call expression. Arguments that are not already expressions
// are wrapped as raw values.
func Call(name string, args ...any) *CallExpression {
	exprs := make([]Expression, len(args))
	for i, arg := range args {
		exprs[i] = Lift(arg)
	}
	return &CallExpression{FuncName: name, Args: exprs}
}

// Lift turns any go value into an expression. Expressions are returned as is.
func Lift(val any) Expression {
	if expr, isExpr := val.(Expression); isExpr {
		return expr
	}
	return Value{Val: val}
}

func (call *CallExpression) String() string {
	if call == nil {
		return "<nil>"
	}
	args := make([]string, len(call.Args))
	for i, arg := range call.Args {
		if arg == nil {
			args[i] = "<nil>"
		} else {
			args[i] = arg.String()
		}
	}
	return fmt.Sprintf("%s(%s)", call.FuncName, strings.Join(args, ", "))
}

func (v Value) String() string {
	switch tv := v.Val.(type) {
	case nil:
		return NameNil
	case string:
		return fmt.Sprintf("%q", tv)
	default:
		return fmt.Sprint(tv)
	}
}

// Classify maps a raw value to the name of the builtin type it belongs to.
// Every go numeric kind is a number. ok is false when the value has no builtin
// type.
func Classify(val any) (name string, ok bool) {
	switch val.(type) {
	case nil:
		return NameNil, true
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return NameNumber, true
	case string:
		return NameString, true
	case bool:
		return NameBool, true
	default:
		return "", false
	}
}

// Describe gives a short description of the type an argument was observed to
// have. Calls are described by name only; callers that know the declaration
// can do better.
func Describe(expr Expression) string {
	switch te := expr.(type) {
	case nil:
		return "<nil>"
	case *Type:
		if te == nil {
			return "<nil>"
		}
		return "type " + te.String()
	case *CallExpression:
		if te == nil {
			return "<nil>"
		}
		return "call " + te.FuncName
	case Value:
		if name, ok := Classify(te.Val); ok {
			return name
		}
		return fmt.Sprintf("%T", te.Val)
	default:
		return fmt.Sprintf("%T", expr)
	}
}
