// SPDX-License-Identifier: MIT

package solver

import (
	"strings"

	"github.com/katalvlaran/computor/numeric"
	"github.com/katalvlaran/computor/polynomial"
)

// HigherDegree reports a polynomial of degree > 2 without solving it.
type HigherDegree struct {
	terms    []polynomial.Term
	degree   uint32
	variable byte
}

func (*HigherDegree) strategy() {}

// Solve records the reduced terms and the degree.
func (s *HigherDegree) Solve(p *polynomial.Polynomial) {
	s.terms = p.Terms()
	s.degree = p.Degree()
}

// Degree returns the highest exponent seen by Solve.
func (s *HigherDegree) Degree() uint32 { return s.degree }

// Outcome returns Unsolved.
func (*HigherDegree) Outcome() Outcome { return Unsolved }

// Roots returns nil.
func (*HigherDegree) Roots() []numeric.Complex { return nil }

// Terms returns the reduced terms in ascending exponent order.
func (s *HigherDegree) Terms() []polynomial.Term { return s.terms }

// Describe renders the reduced form and the refusal.
func (s *HigherDegree) Describe() string {
	var b strings.Builder
	header(&b, s.terms, s.degree, s.variable)
	b.WriteString("The polynomial degree is strictly greater than 2, I can't solve.\n")

	return b.String()
}
