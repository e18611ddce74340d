// SPDX-License-Identifier: MIT

package polynomial_test

import (
	"testing"

	"github.com/katalvlaran/computor/polynomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_SeedsConstant checks the exponent-0 entry exists from the start.
func TestNew_SeedsConstant(t *testing.T) {
	p := polynomial.New()
	c, ok := p.Coefficient(0)
	require.True(t, ok)
	assert.Equal(t, 0.0, c)
	assert.Equal(t, uint32(0), p.Degree())
	assert.Equal(t, 1, p.Len())
}

// TestAdd_Cancellation removes non-zero exponents that sum to zero but keeps X^0.
func TestAdd_Cancellation(t *testing.T) {
	p := polynomial.New()
	p.Add(2, 3)
	p.Add(0, 5)
	p.Add(2, -3)
	p.Add(0, -5)

	_, ok := p.Coefficient(2)
	assert.False(t, ok, "cancelled X^2 must be removed")
	c, ok := p.Coefficient(0)
	assert.True(t, ok, "X^0 is never removed")
	assert.Equal(t, 0.0, c)
	assert.Equal(t, uint32(0), p.Degree())
}

// TestAdd_Accumulates sums repeated exponents.
func TestAdd_Accumulates(t *testing.T) {
	p := polynomial.FromTerms(
		polynomial.Term{Degree: 1, Coefficient: 2},
		polynomial.Term{Degree: 1, Coefficient: 0.5},
		polynomial.Term{Degree: 7, Coefficient: -1},
	)
	assert.Equal(t, []polynomial.Term{
		{Degree: 0, Coefficient: 0},
		{Degree: 1, Coefficient: 2.5},
		{Degree: 7, Coefficient: -1},
	}, p.Terms())
	assert.Equal(t, uint32(7), p.Degree())
}

// TestAdd_ZeroCoefficientTerm does not create an entry for a zero term.
func TestAdd_ZeroCoefficientTerm(t *testing.T) {
	p := polynomial.New()
	p.Add(3, 0)
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, uint32(0), p.Degree())
}

// TestClone_Independent ensures a clone does not share storage.
func TestClone_Independent(t *testing.T) {
	p := polynomial.FromTerms(polynomial.Term{Degree: 1, Coefficient: 1})
	q := p.Clone()
	require.True(t, p.Equal(q))

	q.Add(1, 1)
	assert.False(t, p.Equal(q))
	assert.False(t, p.Equal(nil))
	c, _ := p.Coefficient(1)
	assert.Equal(t, 1.0, c)
}

// TestReduced covers the sign rendering rule.
func TestReduced(t *testing.T) {
	tests := []struct {
		name  string
		terms []polynomial.Term
		want  string
	}{
		{
			name:  "positive first",
			terms: []polynomial.Term{{0, 4}, {1, 4}, {2, -9.3}},
			want:  "4 * X^0 + 4 * X^1 - 9.3 * X^2 = 0",
		},
		{
			name:  "negative first",
			terms: []polynomial.Term{{0, -5}, {1, 3}},
			want:  "-5 * X^0 + 3 * X^1 = 0",
		},
		{
			name:  "zero constant",
			terms: []polynomial.Term{{0, 0}},
			want:  "0 * X^0 = 0",
		},
		{
			name:  "gap in exponents",
			terms: []polynomial.Term{{0, 1}, {3, -0.5}},
			want:  "1 * X^0 - 0.5 * X^3 = 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, polynomial.Reduced(tt.terms, 'X'))
		})
	}
}

// TestString uses the default variable.
func TestString(t *testing.T) {
	p := polynomial.FromTerms(polynomial.Term{Degree: 2, Coefficient: 1}, polynomial.Term{Coefficient: -4})
	assert.Equal(t, "-4 * X^0 + 1 * X^2 = 0", p.String())
	assert.Equal(t, "-4 * y^0 + 1 * y^2 = 0", polynomial.Reduced(p.Terms(), 'y'))
}
