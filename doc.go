// SPDX-License-Identifier: MIT

// Package computor reads a single-variable polynomial equation, reduces it to
// "… = 0" form and solves it up to degree 2.
//
// 🚀 Pipeline
//
//	text ──lexer──▶ tokens ──parser──▶ degree map ──solver──▶ strategy ──▶ Report
//
// Every stage is a pure function of its input; the first lexical or syntax
// error aborts the pipeline and is returned as is.
//
// ✨ What is solved?
//   - degree 0: every real number, or none, is a solution
//   - degree 1: one real root
//   - degree 2: one double root, two real roots or two complex conjugate roots
//   - degree > 2: reduced and reported, not solved
//
// Subpackages:
//
//	numeric/     Newton–Raphson square root, complex root value, float rendering
//	lexer/       table-driven tokenizer with one-character pushback
//	polynomial/  exponent → coefficient map with cancellation, reduced form
//	parser/      recursive-descent parser with in-place reduction
//	solver/      degree dispatcher and the four strategies
//
// Quick example:
//
//	rep, err := computor.Solve("5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0")
//	if err != nil { … }
//	fmt.Print(rep)               // human-readable description
//	data, _ := rep.JSON()        // machine-readable report
//
//	go install github.com/katalvlaran/computor/cmd/computor@latest
package computor
