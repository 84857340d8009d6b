// Package main is the main entrypoint to the declcheck application
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tanema/declcheck/src/checker"
	"github.com/tanema/declcheck/src/conf"
	"github.com/tanema/declcheck/src/manifest"
	"github.com/tanema/declcheck/src/repl"
	"github.com/tanema/declcheck/src/report"
)

var (
	manifestPath   string
	executeExpr    string
	interactive    bool
	showVersion    bool
	classifyValues bool
	strictTypeRefs bool
	returnTypes    bool
	prelude        bool
	timeFormat     string
)

func init() {
	flag.StringVar(&manifestPath, "f", "", "load declarations and calls from a manifest file")
	flag.StringVar(&executeExpr, "e", "", "check expression 'expr'")
	flag.BoolVar(&interactive, "i", false, "enter interactive mode after checking")
	flag.BoolVar(&showVersion, "v", false, "show version information")
	flag.BoolVar(&classifyValues, "classify", false, "check raw argument values by their builtin type")
	flag.BoolVar(&strictTypeRefs, "strict", false, "require type reference arguments to match the parameter type")
	flag.BoolVar(&returnTypes, "returns", false, "check nested call return types against parameter types")
	flag.BoolVar(&prelude, "prelude", false, "register the builtin types number, string, bool and nil")
	flag.StringVar(&timeFormat, "t", conf.TIMEFORMAT, "strftime format for result timestamps")
}

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		printVersion()
	}

	m := &manifest.Manifest{}
	if stat, _ := os.Stdin.Stat(); (stat.Mode() & os.ModeCharDevice) == 0 {
		var err error
		m, err = manifest.Load("<stdin>", os.Stdin)
		checkErr(err)
	} else if manifestPath != "" {
		var err error
		m, err = manifest.LoadFile(manifestPath)
		checkErr(err)
	} else if executeExpr == "" && !interactive {
		if !showVersion {
			printUsage()
		}
		return
	}

	tc := checker.New(append(m.CheckerOptions(), flagOptions()...)...)
	m.Register(tc)

	rep, err := report.New(os.Stdout, timeFormat)
	checkErr(err)

	for _, expr := range m.Expressions() {
		ok, err := tc.CheckType(expr, nil)
		checkErr(rep.Report(expr, ok, err))
	}
	if executeExpr != "" {
		expr, err := manifest.ParseExpr(executeExpr)
		checkErr(err)
		ok, err := tc.CheckType(expr, nil)
		checkErr(rep.Report(expr, ok, err))
	}
	if rep.Passed+rep.Failed > 1 {
		checkErr(rep.Summary())
	}

	if interactive {
		runREPL(tc, rep)
	} else if rep.Failed > 0 {
		os.Exit(1)
	}
}

// flagOptions only turns options on so flags can enable what a manifest left off.
func flagOptions() []checker.Option {
	opts := []checker.Option{}
	if classifyValues {
		opts = append(opts, checker.WithValueClassification(true))
	}
	if strictTypeRefs {
		opts = append(opts, checker.WithStrictTypeRefs(true))
	}
	if returnTypes {
		opts = append(opts, checker.WithReturnTypes(true))
	}
	if prelude {
		opts = append(opts, checker.WithPrelude(true))
	}
	return opts
}

func printVersion() {
	fmt.Fprintf(os.Stderr, "%v\n", conf.FullVersion())
}

func printUsage() {
	printVersion()
	fmt.Fprint(os.Stderr, "\nUsage: declcheck [options] [-f manifest.yaml]\n")
	flag.PrintDefaults()
}

func checkErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func runREPL(tc *checker.TypeChecker, rep *report.Reporter) {
	printVersion()
	fmt.Fprint(os.Stderr, "Press ctrl-c to quit or clear current buffer.\n")
	checkErr(repl.New(tc, rep, os.Stdout).Run())
}
