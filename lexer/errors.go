// SPDX-License-Identifier: MIT

// Package lexer: error set.
// This file defines:
//   - sentinel errors ErrUnexpectedCharacter and ErrTooBigNumber,
//   - *Error, the positioned wrapper carrying the offending character or literal.
//
// Design goals:
//   - Callers branch with errors.Is on the sentinel; errors.As(*Error) yields the offset.
//   - Error() reproduces the user-facing diagnostic verbatim, so the CLI prints it as is.
//
// Notes:
//   - Offsets are byte indices into the input, counted from 0.
//   - Non-printable characters are quoted with %q to keep the message on one line.

package lexer

import (
	"errors"
	"fmt"
	"unicode"
)

// Sentinels. Branch with errors.Is; use errors.As(*Error) for the position.
var (
	// ErrUnexpectedCharacter is returned for a character that can neither
	// start nor extend a token.
	ErrUnexpectedCharacter = errors.New("lexer: unexpected character")

	// ErrTooBigNumber is returned when a complete literal does not parse to a
	// finite float64.
	ErrTooBigNumber = errors.New("lexer: number out of range")
)

// Error carries the offending input of a lexical failure.
type Error struct {
	Err     error  // ErrUnexpectedCharacter or ErrTooBigNumber
	Char    rune   // offending character (ErrUnexpectedCharacter)
	Literal string // offending literal (ErrTooBigNumber)
	Offset  int    // byte offset in the source text
}

// Error renders a user-facing sentence naming the input and its offset.
func (e *Error) Error() string {
	if errors.Is(e.Err, ErrTooBigNumber) {
		return fmt.Sprintf("'%s' (at index %d) is a too big number", e.Literal, e.Offset)
	}

	if !unicode.IsPrint(e.Char) {
		return fmt.Sprintf("Unexpected character %q found at index %d", e.Char, e.Offset)
	}

	return fmt.Sprintf("Unexpected character '%c' found at index %d", e.Char, e.Offset)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *Error) Unwrap() error { return e.Err }
