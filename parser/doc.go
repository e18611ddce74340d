// SPDX-License-Identifier: MIT

// Package parser reduces a token sequence to a polynomial degree map by
// recursive descent, applying each term to the map as soon as it is recognised.
//
// Grammar:
//
//	equation   := expression '=' expression End
//	expression := [ '+' | '-' ] term ( ( '+' | '-' ) term )*
//	term       := Number termTail | Variable degree
//	termTail   := '*' Variable degree | Variable degree | ε      (exponent 0)
//	degree     := '^' Number | ε                               (exponent 1)
//
// Semantics:
//   - Right-hand terms are negated, so the result is the equation moved to
//     "… = 0" form.
//   - A bare Variable has coefficient 1; a bare Number has exponent 0.
//   - An exponent must be a non-negative integer that fits in uint32.
//
// Errors:
//   - ErrUnexpectedToken    the grammar does not allow the token here.
//   - ErrNotUIntegerDegree  an exponent that is fractional or out of range.
//   - ErrNoTokenProvided    the sequence ended before the grammar did.
//
// The first error aborts the parse; no partial map is returned.
package parser
