// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/computor/numeric"
	"github.com/katalvlaran/computor/polynomial"
)

// Strategy is the closed set of degree-specific solvers:
// *ZeroDegree, *Linear, *Quadratic and *HigherDegree.
type Strategy interface {
	// Solve reads the coefficients it needs from p and computes the roots.
	Solve(p *polynomial.Polynomial)

	// Describe renders the reduced form, the degree and the solutions.
	Describe() string

	// Degree is the polynomial degree the strategy handles.
	Degree() uint32

	// Outcome classifies the solution set.
	Outcome() Outcome

	// Roots returns the computed roots; nil when there are none to list.
	Roots() []numeric.Complex

	strategy()
}

// Outcome classifies a solution set.
type Outcome uint8

const (
	AllReals        Outcome = iota // degree 0, c0 == 0
	NoSolution                     // degree 0, c0 != 0
	SingleRoot                     // degree 1
	DoubleRoot                     // degree 2, Δ == 0
	TwoRealRoots                   // degree 2, Δ > 0
	TwoComplexRoots                // degree 2, Δ < 0
	Unsolved                       // degree > 2
)

var outcomeNames = [...]string{
	AllReals:        "all-reals",
	NoSolution:      "no-solution",
	SingleRoot:      "single-root",
	DoubleRoot:      "double-root",
	TwoRealRoots:    "two-real-roots",
	TwoComplexRoots: "two-complex-roots",
	Unsolved:        "unsolved",
}

// String returns the kebab-case outcome name.
func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}

	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// MarshalText lets encoders write the outcome name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
