// SPDX-License-Identifier: MIT

// Package lexer: functional options. This file defines:
//   - Option / Options (resolved configuration with unexported fields),
//   - DefaultVariable,
//   - WithVariable, which panics on a non-letter (programmer error),
//   - gatherOptions, the internal resolver.
//
// Design goals:
//   - No global state: every Lexer carries its own Options.
//   - Invalid option values panic at construction, never during Run.
//
// Notes:
//   - The variable letter is matched case-sensitively.

package lexer

// DefaultVariable is the letter recognised as the unknown.
const DefaultVariable byte = 'X'

const panicVariableInvalid = "lexer: WithVariable: variable must be an ASCII letter"

// Option configures a Lexer.
type Option func(*Options)

// Options is the resolved lexer configuration.
type Options struct {
	variable byte
}

// WithVariable sets the letter scanned as the Variable token.
// Panics if letter is not an ASCII letter.
func WithVariable(letter byte) Option {
	if !IsLetter(letter) {
		panic(panicVariableInvalid)
	}

	return func(o *Options) { o.variable = letter }
}

// IsLetter reports whether c is an ASCII letter usable as the unknown.
func IsLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func gatherOptions(opts ...Option) Options {
	o := Options{variable: DefaultVariable}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
