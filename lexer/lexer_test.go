// SPDX-License-Identifier: MIT

package lexer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/computor/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kinds projects a token sequence onto its kinds.
func kinds(toks []lexer.Token) []lexer.Kind {
	out := make([]lexer.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}

	return out
}

// TestTokenize_Empty yields a single End token at offset 0.
func TestTokenize_Empty(t *testing.T) {
	toks, err := lexer.Tokenize("")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, lexer.Token{Kind: lexer.End, Offset: 0}, toks[0])
}

// TestTokenize_Simple checks kinds, values, offsets and lengths.
func TestTokenize_Simple(t *testing.T) {
	toks, err := lexer.Tokenize("42 + X = 0")
	require.NoError(t, err)

	want := []lexer.Token{
		{Kind: lexer.Number, Value: 42, Offset: 0, Length: 2, Text: "42"},
		{Kind: lexer.Plus, Offset: 3, Length: 1, Text: "+"},
		{Kind: lexer.Variable, Offset: 5, Length: 1, Text: "X"},
		{Kind: lexer.Equal, Offset: 7, Length: 1, Text: "="},
		{Kind: lexer.Number, Value: 0, Offset: 9, Length: 1, Text: "0"},
		{Kind: lexer.End, Offset: 10},
	}
	assert.Equal(t, want, toks)
}

// TestTokenize_MaximalMunch closes a literal on its terminator without
// consuming it, even with no whitespace in between.
func TestTokenize_MaximalMunch(t *testing.T) {
	toks, err := lexer.Tokenize("3.25*X^2=-.5X")
	require.NoError(t, err)

	assert.Equal(t, []lexer.Kind{
		lexer.Number, lexer.Mult, lexer.Variable, lexer.Power, lexer.Number,
		lexer.Equal, lexer.Minus, lexer.Number, lexer.Variable, lexer.End,
	}, kinds(toks))
	assert.Equal(t, 3.25, toks[0].Value)
	assert.Equal(t, 4, toks[0].Length)
	assert.Equal(t, 2.0, toks[4].Value)
	assert.Equal(t, 0.5, toks[7].Value)
	assert.Equal(t, 10, toks[7].Offset)
	assert.Equal(t, 2, toks[7].Length)
	assert.Equal(t, 13, toks[9].Offset)
}

// TestTokenize_NumberAtEnd closes a literal on the end sentinel.
func TestTokenize_NumberAtEnd(t *testing.T) {
	toks, err := lexer.Tokenize("X=12.5")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, 12.5, toks[2].Value)
	assert.Equal(t, lexer.Token{Kind: lexer.End, Offset: 6}, toks[3])
}

// TestTokenize_Whitespace skips every ASCII blank.
func TestTokenize_Whitespace(t *testing.T) {
	toks, err := lexer.Tokenize(" \tX\n=\r\f1 ")
	require.NoError(t, err)
	assert.Equal(t, []lexer.Kind{lexer.Variable, lexer.Equal, lexer.Number, lexer.End}, kinds(toks))
	assert.Equal(t, 2, toks[0].Offset)
	assert.Equal(t, 7, toks[2].Offset)
}

// TestTokenize_UnexpectedCharacter reports the character and its offset.
func TestTokenize_UnexpectedCharacter(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		char   rune
		offset int
	}{
		{"ampersand", "X & 1 = 0", '&', 2},
		{"leading", "&", '&', 0},
		{"after number", "12&", '&', 2},
		{"lowercase variable", "x = 1", 'x', 0},
		{"second point", "1.2.3 = 0", '.', 3},
		{"point then blank", "5. = 0", ' ', 2},
		{"lone point", ". = 0", ' ', 1},
		{"point at end", "X = 5.", 0, 6},
		{"non ascii", "X = 2²", '²', 5},
		{"nul byte", "X\x00", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := lexer.Tokenize(tt.in)
			require.Error(t, err)
			assert.Nil(t, toks)
			assert.ErrorIs(t, err, lexer.ErrUnexpectedCharacter)

			var lerr *lexer.Error
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, tt.char, lerr.Char)
			assert.Equal(t, tt.offset, lerr.Offset)
		})
	}
}

// TestRun_StopsAtError keeps only the tokens seen before the failure.
func TestRun_StopsAtError(t *testing.T) {
	l := lexer.New()
	err := l.Run("1 + & + 2")
	require.ErrorIs(t, err, lexer.ErrUnexpectedCharacter)
	assert.Equal(t, []lexer.Kind{lexer.Number, lexer.Plus}, kinds(l.Tokens()))
	assert.Equal(t, "Unexpected character '&' found at index 4", err.Error())
}

// TestTokenize_TooBigNumber rejects literals beyond float64 range.
func TestTokenize_TooBigNumber(t *testing.T) {
	lit := "1" + strings.Repeat("0", 400)
	_, err := lexer.Tokenize("X = " + lit)
	require.ErrorIs(t, err, lexer.ErrTooBigNumber)

	var lerr *lexer.Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, lit, lerr.Literal)
	assert.Equal(t, 4, lerr.Offset)
	assert.Equal(t, "'"+lit+"' (at index 4) is a too big number", err.Error())
}

// TestRun_Reentrant discards the previous sequence on every run.
func TestRun_Reentrant(t *testing.T) {
	l := lexer.New()
	require.NoError(t, l.Run("X^2 = 1"))
	first := l.Tokens()
	require.Len(t, first, 6)

	require.NoError(t, l.Run("X = 0"))
	assert.Len(t, l.Tokens(), 4)
	assert.Equal(t, lexer.Power, first[1].Kind, "earlier result must stay intact")
}

// TestWithVariable recognises a custom letter and rejects the default one.
func TestWithVariable(t *testing.T) {
	toks, err := lexer.Tokenize("2 * y = y^2", lexer.WithVariable('y'))
	require.NoError(t, err)
	assert.Equal(t, []lexer.Kind{
		lexer.Number, lexer.Mult, lexer.Variable, lexer.Equal,
		lexer.Variable, lexer.Power, lexer.Number, lexer.End,
	}, kinds(toks))

	_, err = lexer.Tokenize("X = 1", lexer.WithVariable('y'))
	assert.ErrorIs(t, err, lexer.ErrUnexpectedCharacter)

	assert.Panics(t, func() { lexer.WithVariable('1') })
}

// TestToken_String renders lexemes for diagnostics.
func TestToken_String(t *testing.T) {
	toks, err := lexer.Tokenize("-2.50 * X")
	require.NoError(t, err)
	got := make([]string, len(toks))
	for i, tok := range toks {
		got[i] = tok.String()
	}
	assert.Equal(t, []string{"-", "2.5", "*", "X", "END"}, got)
	assert.Equal(t, "Number", lexer.Number.String())
	assert.Equal(t, "Kind(42)", lexer.Kind(42).String())
}

// TestError_NonPrintable quotes control characters in the message.
func TestError_NonPrintable(t *testing.T) {
	_, err := lexer.Tokenize("X = 5.")
	require.Error(t, err)
	assert.Equal(t, `Unexpected character '\x00' found at index 6`, err.Error())
}
