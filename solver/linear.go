// SPDX-License-Identifier: MIT

package solver

import (
	"strings"

	"github.com/katalvlaran/computor/numeric"
	"github.com/katalvlaran/computor/polynomial"
)

// Linear handles c1·X + c0 = 0 with c1 ≠ 0.
type Linear struct {
	c0, c1   float64
	x        float64
	variable byte
}

func (*Linear) strategy() {}

// Solve computes x = −c0 / c1.
func (s *Linear) Solve(p *polynomial.Polynomial) {
	s.c0 = optional(p, 0)
	s.c1 = leading(p, 1)
	s.x = -s.c0 / s.c1
}

// Degree returns 1.
func (*Linear) Degree() uint32 { return 1 }

// Outcome returns SingleRoot.
func (*Linear) Outcome() Outcome { return SingleRoot }

// Roots returns the single root.
func (s *Linear) Roots() []numeric.Complex {
	return []numeric.Complex{{Real: s.x}}
}

// Describe renders the reduced form and the root.
func (s *Linear) Describe() string {
	var b strings.Builder
	header(&b, []polynomial.Term{{Degree: 0, Coefficient: s.c0}, {Degree: 1, Coefficient: s.c1}}, 1, s.variable)
	b.WriteString("The solution is:\n")
	b.WriteString(numeric.Format(s.x))
	b.WriteByte('\n')

	return b.String()
}
