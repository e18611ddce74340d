// SPDX-License-Identifier: MIT

// Package lexer: table-driven scanner.
// This file defines the character classes, the automaton states, the
// transition matrix and the Lexer that walks it.
//
// Notes:
//   - A number ends on the first non-digit character, which is pushed back and
//     classified again from stInitial.
//   - Signs are separate tokens; the parser folds them into coefficients.

package lexer

import (
	"strconv"
	"unicode/utf8"
)

// class is the column index of the transition matrix.
type class uint8

const (
	clsSpace class = iota
	clsPlus
	clsMinus
	clsMult
	clsPower
	clsEqual
	clsVariable
	clsDigit
	clsPoint
	clsOther
	clsEnd
	numClasses
)

// state is the row index of the transition matrix.
type state uint8

const (
	stInitial  state = iota
	stPlus           // final
	stMinus          // final
	stMult           // final
	stPower          // final
	stEqual          // final
	stVariable       // final
	stInteger        // digits before the point
	stPoint          // point seen, a digit is required next
	stFraction       // digits after the point
	stNumber         // final, closing character is pushed back
	stEnd            // final
	stError
	numStates
)

// transitions drives the scan. Rows of final states are never read: the
// automaton returns to stInitial as soon as a final state is entered.
var transitions = [numStates][numClasses]state{
	stInitial: {
		clsSpace: stInitial, clsPlus: stPlus, clsMinus: stMinus, clsMult: stMult,
		clsPower: stPower, clsEqual: stEqual, clsVariable: stVariable,
		clsDigit: stInteger, clsPoint: stPoint, clsOther: stError, clsEnd: stEnd,
	},
	stInteger: {
		clsSpace: stNumber, clsPlus: stNumber, clsMinus: stNumber, clsMult: stNumber,
		clsPower: stNumber, clsEqual: stNumber, clsVariable: stNumber,
		clsDigit: stInteger, clsPoint: stPoint, clsOther: stNumber, clsEnd: stNumber,
	},
	stPoint: {
		clsSpace: stError, clsPlus: stError, clsMinus: stError, clsMult: stError,
		clsPower: stError, clsEqual: stError, clsVariable: stError,
		clsDigit: stFraction, clsPoint: stError, clsOther: stError, clsEnd: stError,
	},
	stFraction: {
		clsSpace: stNumber, clsPlus: stNumber, clsMinus: stNumber, clsMult: stNumber,
		clsPower: stNumber, clsEqual: stNumber, clsVariable: stNumber,
		clsDigit: stFraction, clsPoint: stError, clsOther: stNumber, clsEnd: stNumber,
	},
}

// symbols maps single-character final states to the token they emit.
var symbols = map[state]Kind{
	stPlus:     Plus,
	stMinus:    Minus,
	stMult:     Mult,
	stPower:    Power,
	stEqual:    Equal,
	stVariable: Variable,
}

// Lexer scans equation text. A Lexer may be reused; it is not safe for
// concurrent use.
type Lexer struct {
	opts   Options
	tokens []Token
}

// New returns a Lexer configured by opts.
func New(opts ...Option) *Lexer {
	return &Lexer{opts: gatherOptions(opts...)}
}

// Tokenize scans text with a fresh Lexer and returns its tokens.
// On error no tokens are returned.
func Tokenize(text string, opts ...Option) ([]Token, error) {
	l := New(opts...)
	if err := l.Run(text); err != nil {
		return nil, err
	}

	return l.Tokens(), nil
}

// Tokens returns the sequence produced by the last Run. After a failed Run it
// holds the tokens recognised before the error.
func (l *Lexer) Tokens() []Token { return l.tokens }

// Run scans text, replacing any previous token sequence.
//
// Implementation:
//   - Stage 1: classify the byte under the cursor (len(text) is the end sentinel).
//   - Stage 2: step the automaton and act on the state entered:
//     initial → the next token starts after the cursor;
//     symbol/end final → emit [start, cursor+1) and reset;
//     number final → emit [start, cursor), reset and step the cursor back;
//     error → fail with the character under the cursor.
//
// Complexity: O(n) time; every byte is classified at most twice.
func (l *Lexer) Run(text string) error {
	var (
		n      = len(text)
		cursor int
		start  int
		st     = stInitial
	)
	l.tokens = make([]Token, 0, n/2+1)

	for cursor = 0; cursor <= n; cursor++ {
		st = transitions[st][l.classify(text, cursor)]
		switch st {
		case stInitial:
			start = cursor + 1
		case stInteger, stPoint, stFraction:
			// literal still growing
		case stNumber:
			if err := l.emitNumber(text, start, cursor); err != nil {
				return err
			}
			st, start = stInitial, cursor
			cursor-- // reclassify the closing character
		case stEnd:
			l.tokens = append(l.tokens, Token{Kind: End, Offset: cursor})
		case stError:
			var r rune // end of input reads as NUL
			if cursor < n {
				r, _ = utf8.DecodeRuneInString(text[cursor:])
			}
			return &Error{Err: ErrUnexpectedCharacter, Char: r, Offset: cursor}
		default:
			l.tokens = append(l.tokens, Token{
				Kind:   symbols[st],
				Offset: start,
				Length: cursor + 1 - start,
				Text:   text[start : cursor+1],
			})
			st, start = stInitial, cursor+1
		}
	}

	return nil
}

// emitNumber parses text[start:end] and appends a Number token.
func (l *Lexer) emitNumber(text string, start, end int) error {
	lit := text[start:end]
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return &Error{Err: ErrTooBigNumber, Literal: lit, Offset: start}
	}
	l.tokens = append(l.tokens, Token{
		Kind:   Number,
		Value:  v,
		Offset: start,
		Length: end - start,
		Text:   lit,
	})

	return nil
}

// classify returns the character class of text[i]; i == len(text) is the
// end-of-input sentinel.
func (l *Lexer) classify(text string, i int) class {
	if i == len(text) {
		return clsEnd
	}
	c := text[i]
	switch {
	case c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r':
		return clsSpace
	case c == '+':
		return clsPlus
	case c == '-':
		return clsMinus
	case c == '*':
		return clsMult
	case c == '^':
		return clsPower
	case c == '=':
		return clsEqual
	case c == l.opts.variable:
		return clsVariable
	case c >= '0' && c <= '9':
		return clsDigit
	case c == '.':
		return clsPoint
	}

	return clsOther
}
