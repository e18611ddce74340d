// SPDX-License-Identifier: MIT

package numeric

import "math"

const (
	// DefaultTolerance is the absolute bound on |r² − x| accepted by Sqrt.
	DefaultTolerance = 1e-6

	// MaxIterations caps Newton refinements. Seeding at x/2 needs about
	// log2(x)/2 halvings before quadratic convergence starts, so 2048 covers
	// the whole float64 range.
	MaxIterations = 2048
)

// Sqrt returns the square root of x using Newton–Raphson iteration seeded at x/2.
//
// Contract:
//   - x == 0    → 0 (the x/2 seed would otherwise divide by zero).
//   - x < 0, NaN → NaN.
//   - x == +Inf → +Inf.
//   - otherwise |r² − x| ≤ DefaultTolerance, or r is the closest the iteration
//     can get when the ulp of x is larger than the tolerance.
//
// Complexity: O(log x) refinements before quadratic convergence.
func Sqrt(x float64) float64 {
	return SqrtTol(x, DefaultTolerance)
}

// SqrtTol is Sqrt with an explicit absolute tolerance on |r² − x|.
// A non-positive or NaN tol falls back to DefaultTolerance.
func SqrtTol(x, tol float64) float64 {
	switch {
	case math.IsNaN(x) || x < 0:
		return math.NaN()
	case x == 0:
		return 0
	case math.IsInf(x, 1):
		return x
	}
	if !(tol > 0) {
		tol = DefaultTolerance
	}

	var (
		guess = x / 2
		next  float64
		i     int
	)
	for i = 0; i < MaxIterations && math.Abs(guess*guess-x) > tol; i++ {
		next = (guess + x/guess) / 2
		// After the first step the guess is ≥ √x and only decreases;
		// a non-decreasing step means the float64 fixed point is reached.
		if i > 0 && next >= guess {
			break
		}
		guess = next
	}

	return guess
}
