// SPDX-License-Identifier: MIT

// Package polynomial stores a reduced single-variable equation as a mapping
// from exponent to coefficient ("degree map") and renders its reduced form.
//
// Invariants:
//   - Exponent 0 is always present (seeded by New, never removed).
//   - Any other exponent is present iff its accumulated coefficient is non-zero;
//     an Add that brings it to exactly 0.0 deletes the entry.
//   - Degree() is therefore 0 or an exponent with a non-zero coefficient.
//
// Reduced form:
//
//	4 * X^0 + 4 * X^1 - 9.3 * X^2 = 0
//
// Terms are printed in ascending exponent order; the first term carries a sign
// only when negative, later terms are joined with " + " or " - ".
package polynomial
