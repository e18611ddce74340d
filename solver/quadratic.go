// SPDX-License-Identifier: MIT

package solver

import (
	"strings"

	"github.com/katalvlaran/computor/numeric"
	"github.com/katalvlaran/computor/polynomial"
)

// Quadratic handles c2·X² + c1·X + c0 = 0 with c2 ≠ 0.
type Quadratic struct {
	c0, c1, c2 float64
	delta      float64
	z1, z2     numeric.Complex
	tol        float64
	variable   byte
}

func (*Quadratic) strategy() {}

// Solve computes Δ = c1² − 4·c2·c0 and the roots.
//
//   - Δ == 0: z1 = −c1 / 2c2.
//   - Δ > 0:  z1 = (−c1 − √Δ) / 2c2, z2 = (−c1 + √Δ) / 2c2.
//   - Δ < 0:  z1,2 = −c1 / 2c2 ∓ i·√(−Δ) / 2c2.
//
// Δ is compared with 0.0 exactly; √ is numeric.SqrtTol.
func (s *Quadratic) Solve(p *polynomial.Polynomial) {
	s.c0 = optional(p, 0)
	s.c1 = optional(p, 1)
	s.c2 = leading(p, 2)
	s.delta = s.c1*s.c1 - 4*s.c2*s.c0
	s.z1, s.z2 = numeric.Complex{}, numeric.Complex{}

	twoA := 2 * s.c2
	switch {
	case s.delta == 0:
		s.z1.Real = -s.c1 / twoA
	case s.delta > 0:
		sq := numeric.SqrtTol(s.delta, s.tol)
		s.z1.Real = (-s.c1 - sq) / twoA
		s.z2.Real = (-s.c1 + sq) / twoA
	default:
		sq := numeric.SqrtTol(-s.delta, s.tol)
		s.z1 = numeric.Complex{Real: -s.c1 / twoA, Imag: -sq / twoA}
		s.z2 = numeric.Complex{Real: -s.c1 / twoA, Imag: sq / twoA}
	}
}

// Degree returns 2.
func (*Quadratic) Degree() uint32 { return 2 }

// Discriminant returns Δ computed by Solve.
func (s *Quadratic) Discriminant() float64 { return s.delta }

// Outcome classifies Δ.
func (s *Quadratic) Outcome() Outcome {
	switch {
	case s.delta == 0:
		return DoubleRoot
	case s.delta > 0:
		return TwoRealRoots
	}

	return TwoComplexRoots
}

// Roots returns one root for Δ == 0, two otherwise (minus branch first).
func (s *Quadratic) Roots() []numeric.Complex {
	if s.Outcome() == DoubleRoot {
		return []numeric.Complex{s.z1}
	}

	return []numeric.Complex{s.z1, s.z2}
}

// Describe renders the reduced form, the discriminant verdict and the roots.
func (s *Quadratic) Describe() string {
	terms := make([]polynomial.Term, 0, 3)
	terms = append(terms, polynomial.Term{Degree: 0, Coefficient: s.c0})
	if s.c1 != 0 {
		terms = append(terms, polynomial.Term{Degree: 1, Coefficient: s.c1})
	}
	terms = append(terms, polynomial.Term{Degree: 2, Coefficient: s.c2})

	var b strings.Builder
	header(&b, terms, 2, s.variable)
	switch s.Outcome() {
	case DoubleRoot:
		b.WriteString("Discriminant is null, the solution is:\n")
	case TwoRealRoots:
		b.WriteString("Discriminant is strictly positive, the two solutions are:\n")
	default:
		b.WriteString("Discriminant is strictly negative, the two complex solutions are:\n")
	}
	for _, z := range s.Roots() {
		b.WriteString(z.String())
		b.WriteByte('\n')
	}

	return b.String()
}
