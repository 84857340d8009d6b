package report

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanema/declcheck/src/types"
)

func newReporter(t *testing.T, format string) (*Reporter, *bytes.Buffer) {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	r, err := New(buf, format)
	require.NoError(t, err)
	r.Now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC) }
	return r, buf
}

func TestReport(t *testing.T) {
	t.Parallel()
	r, buf := newReporter(t, "%H:%M:%S")
	assert.False(t, r.Color)

	require.NoError(t, r.Report(types.Call("addNumbers", types.New("number"), types.New("number")), true, nil))
	require.NoError(t, r.Report(types.Call("addNumbers", 5, 10), false, errors.New("unsupported expression")))
	require.NoError(t, r.Report(nil, false, nil))
	require.NoError(t, r.Summary())

	assert.Equal(t, ""+
		"[14:05:07] ok addNumbers(number, number)\n"+
		"[14:05:07] error addNumbers(5, 10): unsupported expression\n"+
		"[14:05:07] error <nil>\n"+
		"1 passed, 2 failed\n",
		buf.String())
	assert.Equal(t, 1, r.Passed)
	assert.Equal(t, 2, r.Failed)
}

func TestReportColor(t *testing.T) {
	t.Parallel()
	r, buf := newReporter(t, "%Y-%m-%d")
	r.Color = true
	require.NoError(t, r.Report(types.New("number"), true, nil))
	require.NoError(t, r.Report(types.New("bool"), false, errors.New(`custom type "bool" not found`)))
	assert.Equal(t, ""+
		"[2024-03-09] \x1b[32mok\x1b[0m number\n"+
		"[2024-03-09] \x1b[31merror\x1b[0m bool: custom type \"bool\" not found\n",
		buf.String())
}

func TestReportNilCall(t *testing.T) {
	t.Parallel()
	r, buf := newReporter(t, "%H")
	var call *types.CallExpression
	require.NoError(t, r.Report(call, false, errors.New("unsupported expression: <nil>")))
	assert.Equal(t, "[14] error <nil>: unsupported expression: <nil>\n", buf.String())
}

func TestNewInvalidFormat(t *testing.T) {
	t.Parallel()
	_, err := New(bytes.NewBuffer(nil), "%")
	assert.Error(t, err)
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()
	assert.False(t, IsTerminal(bytes.NewBuffer(nil)))
}
