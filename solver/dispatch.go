// SPDX-License-Identifier: MIT

// Package solver: strategy selection. This file defines Dispatch and Solve
// plus the coefficient helpers shared by the strategies.
//
// Notes:
//   - leading panics when the degree map lacks its own highest degree; that is
//     a broken invariant, not a user error.
//   - Absent lower degrees read as 0 through optional.

package solver

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/computor/polynomial"
)

// Dispatch returns a fresh, unsolved strategy for the highest degree of p.
func Dispatch(p *polynomial.Polynomial, opts ...Option) Strategy {
	o := gatherOptions(opts...)

	switch p.Degree() {
	case 0:
		return &ZeroDegree{variable: o.variable}
	case 1:
		return &Linear{variable: o.variable}
	case 2:
		return &Quadratic{variable: o.variable, tol: o.tol}
	}

	return &HigherDegree{variable: o.variable}
}

// Solve dispatches on p and solves it.
func Solve(p *polynomial.Polynomial, opts ...Option) Strategy {
	s := Dispatch(p, opts...)
	s.Solve(p)

	return s
}

// leading returns the coefficient of degree, which the degree-map invariant
// guarantees for the dispatched degree. A missing entry is a programmer error.
func leading(p *polynomial.Polynomial, degree uint32) float64 {
	c, ok := p.Coefficient(degree)
	if !ok {
		panic(fmt.Sprintf("solver: degree %d coefficient missing from degree map", degree))
	}

	return c
}

// optional returns the coefficient of degree or 0 when absent.
func optional(p *polynomial.Polynomial, degree uint32) float64 {
	c, _ := p.Coefficient(degree)

	return c
}

// header writes the two lines shared by every strategy.
func header(b *strings.Builder, terms []polynomial.Term, degree uint32, variable byte) {
	if variable == 0 {
		variable = DefaultVariable
	}
	fmt.Fprintf(b, "Reduced form: %s\n", polynomial.Reduced(terms, variable))
	fmt.Fprintf(b, "Polynomial degree: %d\n", degree)
}
