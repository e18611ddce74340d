// SPDX-License-Identifier: MIT

// Package computor: error set for the facade.
// This file defines ONLY the errors raised by the facade itself. Lexical and
// syntax failures are owned by lexer and parser and returned unwrapped.
//
// Notes:
//   - Messages are prefixed "computor: ..." like the sibling packages.
//   - Match with errors.Is; none of these carry a position.

package computor

import "errors"

// Lexical and syntax errors come from the lexer and parser packages and are
// returned unwrapped; match them with errors.Is against lexer.Err* / parser.Err*.

var (
	// ErrUnknownFormat is returned by ParseFormat for an unsupported name.
	ErrUnknownFormat = errors.New("computor: unknown output format")

	// ErrNonFinite is returned by Report.JSON when a value is NaN or ±Inf,
	// which JSON cannot carry (coefficients near the float64 limit).
	ErrNonFinite = errors.New("computor: non-finite value in report")
)
