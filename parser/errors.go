// SPDX-License-Identifier: MIT

// Package parser: error set.
// This file defines:
//   - sentinel errors ErrUnexpectedToken, ErrNotUIntegerDegree and ErrNoTokenProvided,
//   - *Error, which pins the token the grammar rejected,
//   - unexpected, the helper every production uses to build one.
//
// Design goals:
//   - One error per Parse call; the first rejected token wins.
//   - Parse consumes tokens only; lexical errors never reach this package.
//
// Notes:
//   - A rejected End token reports the input length as its index.

package parser

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/computor/lexer"
	"github.com/katalvlaran/computor/numeric"
)

var (
	// ErrUnexpectedToken indicates a token the grammar does not accept at the cursor.
	ErrUnexpectedToken = errors.New("parser: unexpected token")

	// ErrNotUIntegerDegree indicates an exponent that is not a uint32 integer.
	ErrNotUIntegerDegree = errors.New("parser: degree is not an unsigned integer")

	// ErrNoTokenProvided indicates the cursor ran past the token sequence.
	ErrNoTokenProvided = errors.New("parser: no token provided")
)

// Error carries the token that stopped the parse. Token is the zero value for
// ErrNoTokenProvided.
type Error struct {
	Err   error
	Token lexer.Token
}

// Error renders a user-facing sentence naming the token and its offset.
func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotUIntegerDegree):
		return fmt.Sprintf("%s, found at index %d, is not an unsigned integer degree",
			numeric.Format(e.Token.Value), e.Token.Offset)
	case errors.Is(e.Err, ErrNoTokenProvided):
		return "No token was provided"
	}

	return fmt.Sprintf("Unexpected token '%s' found at index %d", e.Token, e.Token.Offset)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *Error) Unwrap() error { return e.Err }

func unexpected(tok lexer.Token) error {
	return &Error{Err: ErrUnexpectedToken, Token: tok}
}
