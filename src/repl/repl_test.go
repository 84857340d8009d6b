package repl

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanema/declcheck/src/checker"
	"github.com/tanema/declcheck/src/report"
	"github.com/tanema/declcheck/src/types"
)

func newSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	tc := checker.New()
	tc.AddCustomType(types.New("number"))
	tc.AddFunction(types.NewFunction(
		"addNumbers",
		types.New("number"),
		types.Param("x", types.New("number")),
		types.Param("y", types.New("number")),
	))
	out := bytes.NewBuffer(nil)
	rep, err := report.New(out, "%H")
	require.NoError(t, err)
	rep.Now = func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) }
	return New(tc, rep, out), out
}

func TestEval(t *testing.T) {
	t.Parallel()
	cases := []struct {
		line     string
		expected string
	}{
		{"", ""},
		{":types", "number\n"},
		{":funcs", "function addNumbers(x: number, y: number): number\n"},
		{"{call: addNumbers, args: [{type: number}, {type: number}]}", "[09] ok addNumbers(number, number)\n"},
		{
			"{call: addNumbers, args: [{type: number}]}",
			"[09] error addNumbers(number): wrong number of arguments to \"addNumbers\": expected 2, received 1\n",
		},
		{"{call: subtract}", "[09] error subtract(): function \"subtract\" not found\n"},
		{"{name: x}", "parse expression: line 1: unknown key \"name\"\n"},
	}

	for _, tc := range cases {
		session, out := newSession(t)
		assert.False(t, session.Eval(tc.line), tc.line)
		assert.Equal(t, tc.expected, out.String(), tc.line)
	}
}

func TestEvalMultiline(t *testing.T) {
	t.Parallel()
	session, out := newSession(t)
	assert.True(t, session.Eval("{call: addNumbers, args: ["))
	assert.True(t, session.Eval("  {type: number},"))
	assert.Empty(t, out.String())
	assert.False(t, session.Eval("  {type: number}]}"))
	assert.Equal(t, "[09] ok addNumbers(number, number)\n", out.String())
	assert.Equal(t, 0, session.buf.Len())
}

func TestOpen(t *testing.T) {
	t.Parallel()
	cases := []struct {
		src   string
		depth int
	}{
		{"{call: f}", 0},
		{"{call: f, args: [", 2},
		{`{call: f, args: ["{"`, 2},
		{`{call: f, args: ['[x'`, 2},
		{`{call: f, args: ["\"{"]}`, 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.depth, open(tc.src), tc.src)
	}
}
