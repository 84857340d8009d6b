package types

import (
	"fmt"
	"strings"
)

type (
	// Type is a nominal type identified only by its name.
	Type struct{ Name string }
	// ParamDeclaration binds a parameter name to the type it requires.
	ParamDeclaration struct {
		Name string
		Type *Type
	}
	// FunctionDeclaration describes a function with ordered params and a return type.
	FunctionDeclaration struct {
		Name   string
		Params []ParamDeclaration
		Return *Type
	}
)

const (
	// NameNumber is a label for the number type.
	NameNumber = "number"
	// NameString is a label for the string type.
	NameString = "string"
	// NameBool is a label for the bool type.
	NameBool = "bool"
	// NameNil is a label for the nil type.
	NameNil = "nil"
)

var (
	// Number is the builtin number type.
	Number = &Type{Name: NameNumber}
	// String is the builtin string type.
	String = &Type{Name: NameString}
	// Bool is the builtin bool type.
	Bool = &Type{Name: NameBool}
	// Nil is the builtin nil type.
	Nil = &Type{Name: NameNil}
	// DefaultTypes is a collection of types that exist when a checker is created
	// with its prelude enabled.
	DefaultTypes = map[string]*Type{
		NameNumber: Number,
		NameString: String,
		NameBool:   Bool,
		NameNil:    Nil,
	}
)

// New creates a new named type.
func New(name string) *Type { return &Type{Name: name} }

// Equal reports if two types are the same nominal type.
func Equal(a, b *Type) bool {
	if a == b {
		return true
	}
	return a != nil && b != nil && a.Name == b.Name
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.Name
}

// Param creates a parameter declaration.
func Param(name string, t *Type) ParamDeclaration {
	return ParamDeclaration{Name: name, Type: t}
}

func (p ParamDeclaration) String() string { return fmt.Sprintf("%s: %s", p.Name, p.Type) }

// NewFunction creates a new function declaration.
func NewFunction(name string, ret *Type, params ...ParamDeclaration) *FunctionDeclaration {
	return &FunctionDeclaration{Name: name, Params: params, Return: ret}
}

// Arity is the amount of arguments a call to this function must pass.
func (fn *FunctionDeclaration) Arity() int { return len(fn.Params) }

func (fn *FunctionDeclaration) String() string {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("function %s(%s): %s", fn.Name, strings.Join(params, ", "), fn.Return)
}
