// Package repl runs an interactive loop that checks one expression at a time.
// Expressions are written as yaml flow nodes, for example
//
//	{call: addNumbers, args: [{type: number}, 5]}
//
// and may span lines until their brackets are closed.
package repl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/tanema/declcheck/src/checker"
	"github.com/tanema/declcheck/src/conf"
	"github.com/tanema/declcheck/src/manifest"
	"github.com/tanema/declcheck/src/report"
)

const contPrompt = "...> "

// Session holds the state of a repl between lines.
type Session struct {
	checker  *checker.TypeChecker
	reporter *report.Reporter
	out      io.Writer
	buf      *bytes.Buffer
}

// New creates a session checking against tc. Results are reported through
// rep and listings are written to out.
func New(tc *checker.TypeChecker, rep *report.Reporter, out io.Writer) *Session {
	return &Session{
		checker:  tc,
		reporter: rep,
		out:      out,
		buf:      bytes.NewBuffer(nil),
	}
}

// Run reads lines until the user quits with ctrl-c on an empty buffer or ctrl-d.
func (s *Session) Run() error {
	rl, err := readline.New(conf.PROMPT)
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()
	for {
		src, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if s.buf.Len() > 0 {
					rl.SetPrompt(conf.PROMPT)
					s.buf.Reset()
					fmt.Fprint(os.Stderr, "Press ctrl-c again to quit.\n")
					continue
				}
				return nil
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if s.Eval(src) {
			rl.SetPrompt(contPrompt)
		} else {
			rl.SetPrompt(conf.PROMPT)
		}
	}
}

// Eval handles a single line of input. It returns true when the input so far
// is incomplete and more lines are needed.
func (s *Session) Eval(line string) bool {
	if s.buf.Len() == 0 {
		switch strings.TrimSpace(line) {
		case "":
			return false
		case ":types":
			for _, defn := range s.checker.CustomTypes() {
				fmt.Fprintln(s.out, defn)
			}
			return false
		case ":funcs":
			for _, decl := range s.checker.Functions() {
				fmt.Fprintln(s.out, decl)
			}
			return false
		}
	}

	s.buf.WriteString(line + " ")
	if open(s.buf.String()) > 0 {
		return true
	}
	src := s.buf.String()
	s.buf.Reset()

	expr, err := manifest.ParseExpr(src)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return false
	}
	ok, err := s.checker.CheckType(expr, nil)
	if werr := s.reporter.Report(expr, ok, err); werr != nil {
		fmt.Fprintln(os.Stderr, werr)
	}
	return false
}

// open counts the brackets that have not been closed yet, ignoring any inside
// quoted strings.
func open(src string) int {
	depth := 0
	var quote rune
	escaped := false
	for _, ch := range src {
		switch {
		case escaped:
			escaped = false
		case quote != 0:
			if ch == '\\' && quote == '"' {
				escaped = true
			} else if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == '{' || ch == '[':
			depth++
		case ch == '}' || ch == ']':
			depth--
		}
	}
	return depth
}
