// SPDX-License-Identifier: MIT

// Package solver: functional options. This file defines:
//   - DefaultTolerance and DefaultVariable,
//   - WithTolerance and WithVariable (panic on nonsensical values),
//   - gatherOptions, the internal resolver used by Solve and Dispatch.
//
// Design goals:
//   - Strategies read resolved values only; they never validate options.
//   - Tolerance is threaded into numeric.SqrtTol and affects only the quadratic case.
//
// Notes:
//   - A tolerance must be finite and strictly positive. NaN, 0 and ±Inf panic.

package solver

import (
	"math"

	"github.com/katalvlaran/computor/numeric"
)

const (
	// DefaultTolerance bounds |r² − Δ| for the quadratic square root.
	DefaultTolerance = numeric.DefaultTolerance

	// DefaultVariable is the letter printed in the reduced form.
	DefaultVariable byte = 'X'
)

const (
	panicToleranceInvalid = "solver: WithTolerance: tol must be finite and > 0"
	panicVariableInvalid  = "solver: WithVariable: variable must be an ASCII letter"
)

// Option configures the strategies built by Dispatch.
type Option func(*Options)

// Options is the resolved solver configuration.
type Options struct {
	tol      float64
	variable byte
}

// WithTolerance sets the square-root tolerance used by Quadratic.
// Panics unless tol is finite and positive.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 1) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithVariable sets the unknown's letter in Describe output.
// Panics if letter is not an ASCII letter.
func WithVariable(letter byte) Option {
	if !(letter >= 'a' && letter <= 'z') && !(letter >= 'A' && letter <= 'Z') {
		panic(panicVariableInvalid)
	}

	return func(o *Options) { o.variable = letter }
}

func gatherOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance, variable: DefaultVariable}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
