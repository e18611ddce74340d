// SPDX-License-Identifier: MIT

// Package lexer turns equation text into an ordered sequence of typed tokens.
//
// 🚀 How does it scan?
//
//	The scanner is a finite automaton driven by a transition matrix keyed by
//	(state, character class). Single-character symbols (+ - * ^ = X) close a
//	token immediately. Numbers use maximal munch: digits and at most one
//	decimal point are accumulated, and the first character that cannot extend
//	the literal closes it without being consumed: the cursor steps back one
//	byte and the character is classified again from the initial state.
//
//	Character classes:
//	  whitespace │ + │ - │ * │ ^ │ = │ variable │ digit │ . │ other │ end
//
// ✨ Guarantees:
//   - Every successful run ends with exactly one End token at len(text).
//   - Offsets and lengths are byte positions into the original text.
//   - Runs are independent: Run discards the previous sequence.
//
// Errors:
//   - ErrUnexpectedCharacter  a character that cannot start or extend a token.
//   - ErrTooBigNumber         a literal that does not fit a finite float64.
//
// Usage:
//
//	toks, err := lexer.Tokenize("42 + X = 0")
//	// [42 + X = 0 END]
package lexer
