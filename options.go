// SPDX-License-Identifier: MIT

// Package computor: facade options. This file defines:
//   - DefaultVariable and DefaultTolerance,
//   - WithVariable and WithTolerance, which fan out to lexer and solver options,
//   - gatherOptions, the internal resolver.
//
// Design goals:
//   - One option set configures the whole pipeline; callers never touch
//     lexer.Option or solver.Option directly.
//   - Validation happens once, here, with the same panic rules as the leaf packages.

package computor

import (
	"math"

	"github.com/katalvlaran/computor/lexer"
	"github.com/katalvlaran/computor/numeric"
)

// ---------- Defaults ----------

const (
	// DefaultVariable is the letter of the unknown.
	DefaultVariable byte = 'X'

	// DefaultTolerance is the absolute bound on |r² − Δ| for quadratic roots.
	DefaultTolerance = numeric.DefaultTolerance
)

const (
	panicVariableInvalid  = "computor: WithVariable: variable must be an ASCII letter"
	panicToleranceInvalid = "computor: WithTolerance: tol must be finite and > 0"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved pipeline configuration.
type Options struct {
	variable byte
	tol      float64
}

// WithVariable scans and prints letter as the unknown instead of X.
func WithVariable(letter byte) Option {
	if !lexer.IsLetter(letter) {
		panic(panicVariableInvalid)
	}

	return func(o *Options) { o.variable = letter }
}

// WithTolerance sets the square-root tolerance of the quadratic solver.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 1) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

func gatherOptions(opts ...Option) Options {
	o := Options{variable: DefaultVariable, tol: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
