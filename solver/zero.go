// SPDX-License-Identifier: MIT

package solver

import (
	"strings"

	"github.com/katalvlaran/computor/numeric"
	"github.com/katalvlaran/computor/polynomial"
)

// ZeroDegree handles c0 = 0: either every real number or none is a solution.
type ZeroDegree struct {
	c0       float64
	variable byte
}

func (*ZeroDegree) strategy() {}

// Solve reads c0.
func (s *ZeroDegree) Solve(p *polynomial.Polynomial) {
	s.c0 = optional(p, 0)
}

// Degree returns 0.
func (*ZeroDegree) Degree() uint32 { return 0 }

// Outcome is AllReals when c0 == 0, NoSolution otherwise.
func (s *ZeroDegree) Outcome() Outcome {
	if s.c0 == 0 {
		return AllReals
	}

	return NoSolution
}

// Roots returns nil; the solution set is all or nothing.
func (*ZeroDegree) Roots() []numeric.Complex { return nil }

// Describe renders the verdict.
func (s *ZeroDegree) Describe() string {
	var b strings.Builder
	header(&b, []polynomial.Term{{Degree: 0, Coefficient: s.c0}}, 0, s.variable)
	if s.Outcome() == AllReals {
		b.WriteString("All real numbers are solution\n")
	} else {
		b.WriteString("No real number is solution\n")
	}

	return b.String()
}
