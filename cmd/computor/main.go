// SPDX-License-Identifier: MIT

// Command computor solves a polynomial equation of degree ≤ 2 given as its
// single argument.
//
// Usage:
//
//	computor [flags] "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0"
//
// Flags:
//
//	-format text|json|yaml  output format (default text)
//	-tokens                 dump the token sequence to stderr
//	-v                      trace pipeline stages to stderr
//	-var X                  letter of the unknown
//	-tol 1e-6               square-root tolerance
//
// Exit status: 0 on success (a degree above 2 is reported, not an error),
// 1 when the equation cannot be read, 2 on bad usage.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/katalvlaran/computor"
	"github.com/katalvlaran/computor/lexer"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// tokenDump is the -tokens view of a lexer.Token.
type tokenDump struct {
	Kind   string
	Text   string
	Offset int
	Length int
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("computor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		format   = fs.String("format", computor.FormatText.String(), "output format: text, json or yaml")
		tokens   = fs.Bool("tokens", false, "dump the token sequence to stderr")
		verbose  = fs.Bool("v", false, "trace pipeline stages to stderr")
		variable = fs.String("var", string(computor.DefaultVariable), "letter of the unknown")
		tol      = fs.Float64("tol", computor.DefaultTolerance, "square-root tolerance (> 0)")
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: computor [flags] \"<equation>\"\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}
	if len(*variable) != 1 || !lexer.IsLetter((*variable)[0]) {
		fmt.Fprintf(stderr, "computor: -var must be a single ASCII letter, got %q\n", *variable)
		return exitUsage
	}
	if !(*tol > 0) || math.IsInf(*tol, 1) {
		fmt.Fprintf(stderr, "computor: -tol must be finite and > 0, got %v\n", *tol)
		return exitUsage
	}
	f, err := computor.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(stderr, "computor: %v\n", err)
		return exitUsage
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	equation := fs.Arg(0)
	letter := (*variable)[0]
	log.Debug("read equation", "equation", equation, "format", f.String())

	if *tokens {
		// Lexical errors are reported by Solve below.
		if toks, terr := lexer.Tokenize(equation, lexer.WithVariable(letter)); terr == nil {
			dump := make([]tokenDump, len(toks))
			for i, t := range toks {
				dump[i] = tokenDump{Kind: t.Kind.String(), Text: t.String(), Offset: t.Offset, Length: t.Length}
			}
			dumper.Fdump(stderr, dump)
		}
	}

	rep, err := computor.Solve(equation, computor.WithVariable(letter), computor.WithTolerance(*tol))
	if err != nil {
		log.Debug("pipeline aborted", "err", err)
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	log.Debug("reduced", "form", rep.ReducedForm, "degree", rep.Degree)
	if rep.Discriminant != nil {
		log.Debug("discriminant", "value", *rep.Discriminant)
	}
	log.Debug("solved", "outcome", rep.Outcome.String(), "roots", len(rep.Roots))

	if err = rep.Write(stdout, f); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	return exitOK
}
