package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeEqual(t *testing.T) {
	t.Parallel()
	cases := []struct {
		a, b  *Type
		match bool
	}{
		{Number, Number, true},
		{Number, New(NameNumber), true},
		{New("user"), New("user"), true},
		{Number, String, false},
		{New("user"), New("User"), false},
		{nil, nil, true},
		{Number, nil, false},
		{nil, Number, false},
	}

	for i, tc := range cases {
		assert.Equal(t, tc.match, Equal(tc.a, tc.b), "[%v] %s does not match %s", i, tc.a, tc.b)
	}
}

func TestDeclarationString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		defn     fmtStringer
		expected string
	}{
		{Number, NameNumber},
		{(*Type)(nil), "<nil>"},
		{Param("x", Number), "x: number"},
		{NewFunction("now", Number), "function now(): number"},
		{
			NewFunction("getFullName", String, Param("firstName", String), Param("lastName", String)),
			"function getFullName(firstName: string, lastName: string): string",
		},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, tc.defn.String())
	}
}

type fmtStringer interface{ String() string }

func TestArity(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, NewFunction("now", Number).Arity())
	assert.Equal(t, 2, NewFunction("addNumbers", Number, Param("x", Number), Param("y", Number)).Arity())
}

func TestDefaultTypes(t *testing.T) {
	t.Parallel()
	for name, defn := range DefaultTypes {
		assert.Equal(t, name, defn.Name)
	}
	assert.Len(t, DefaultTypes, 4)
}
