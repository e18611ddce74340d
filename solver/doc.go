// SPDX-License-Identifier: MIT

// Package solver selects and runs a root-finding strategy for a reduced
// polynomial.
//
// 🚀 Dispatch by highest degree:
//
//	0  → ZeroDegree    every real or no real number is a solution
//	1  → Linear        x = −c0 / c1
//	2  → Quadratic     Δ = c1² − 4·c2·c0, real or complex conjugate roots
//	>2 → HigherDegree  reported, not solved
//
// Each strategy owns only the coefficients and roots it needs and is created
// fresh by Dispatch. Solve must run before Describe; Describe on a fresh
// strategy renders its zero values.
//
// The quadratic branch compares Δ with 0.0 exactly. A discriminant that is
// mathematically zero but off by rounding lands in one of the two-root branches.
//
// Usage:
//
//	s := solver.Solve(poly)
//	fmt.Print(s.Describe())
//	for _, z := range s.Roots() { … }
package solver
