// Package report writes check results out as one line per checked expression.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/mattn/go-isatty"

	"github.com/tanema/declcheck/src/types"
)

const (
	colorReset = "\x1b[0m"
	colorRed   = "\x1b[31m"
	colorGreen = "\x1b[32m"
)

// Reporter stamps and writes check results and keeps a tally of them.
type Reporter struct {
	out    io.Writer
	stamp  *strftime.Strftime
	Color  bool
	Now    func() time.Time
	Passed int
	Failed int
}

// New creates a reporter writing to out with timestamps in the strftime
// format given. Color is enabled when out is a terminal.
func New(out io.Writer, format string) (*Reporter, error) {
	stamp, err := strftime.New(format)
	if err != nil {
		return nil, fmt.Errorf("invalid time format '%v': %w", format, err)
	}
	return &Reporter{
		out:   out,
		stamp: stamp,
		Color: IsTerminal(out),
		Now:   time.Now,
	}, nil
}

// IsTerminal reports if w is a terminal that accepts color. The NO_COLOR
// environment variable turns color off.
func IsTerminal(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	file, isFile := w.(interface{ Fd() uintptr })
	if !isFile {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// Report writes the result of checking expr. err takes precedence over ok.
func (r *Reporter) Report(expr types.Expression, ok bool, err error) error {
	label, color := "ok", colorGreen
	detail := ""
	if err != nil || !ok {
		label, color = "error", colorRed
		r.Failed++
		if err != nil {
			detail = ": " + err.Error()
		}
	} else {
		r.Passed++
	}
	if r.Color {
		label = color + label + colorReset
	}
	_, werr := fmt.Fprintf(r.out, "[%s] %s %s%s\n", r.stamp.FormatString(r.Now()), label, exprString(expr), detail)
	return werr
}

// Summary writes the tally of all results reported so far.
func (r *Reporter) Summary() error {
	_, err := fmt.Fprintf(r.out, "%d passed, %d failed\n", r.Passed, r.Failed)
	return err
}

func exprString(expr types.Expression) string {
	if expr == nil {
		return "<nil>"
	}
	return expr.String()
}
