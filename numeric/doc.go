// SPDX-License-Identifier: MIT

// Package numeric holds the small numeric toolkit used by the solver:
// an iterative square root, a complex root value and float rendering.
//
// What is here?
//
//	Sqrt     Newton–Raphson square root, |r² − x| ≤ DefaultTolerance
//	SqrtTol  same, with a caller-supplied tolerance
//	Complex  a root with real and imaginary parts
//	Format   shortest decimal rendering of a float64
//
// Sqrt is deliberately hand-rolled: its tolerance contract (absolute error on
// r² − x, not on r) is part of the observable output of the solver.
//
// Usage:
//
//	r := numeric.Sqrt(2)            // ≈ 1.41421356
//	z := numeric.Complex{Real: -0.5, Imag: 0.8660254}
//	fmt.Println(z)                  // -0.5+0.8660254i
package numeric
