// SPDX-License-Identifier: MIT

package computor

import (
	"github.com/katalvlaran/computor/lexer"
	"github.com/katalvlaran/computor/parser"
	"github.com/katalvlaran/computor/polynomial"
	"github.com/katalvlaran/computor/solver"
)

// Reduce tokenizes and parses equation into its degree map.
//
// Errors: *lexer.Error (ErrUnexpectedCharacter, ErrTooBigNumber) or
// *parser.Error (ErrUnexpectedToken, ErrNotUIntegerDegree, ErrNoTokenProvided),
// returned unmodified.
func Reduce(equation string, opts ...Option) (*polynomial.Polynomial, error) {
	o := gatherOptions(opts...)

	tokens, err := lexer.Tokenize(equation, lexer.WithVariable(o.variable))
	if err != nil {
		return nil, err
	}

	return parser.Parse(tokens)
}

// Solve runs the whole pipeline and returns the report of the chosen strategy.
// Degrees above 2 are not an error: the report's Outcome is solver.Unsolved.
//
// Implementation:
//   - Stage 1: Reduce (tokenize + parse); the first error aborts.
//   - Stage 2: dispatch on the highest degree and solve.
//   - Stage 3: collect terms, roots and description into a Report.
func Solve(equation string, opts ...Option) (Report, error) {
	o := gatherOptions(opts...)

	p, err := Reduce(equation, opts...)
	if err != nil {
		return Report{}, err
	}

	s := solver.Solve(p, solver.WithTolerance(o.tol), solver.WithVariable(o.variable))
	terms := p.Terms()
	rep := Report{
		Equation:    equation,
		ReducedForm: polynomial.Reduced(terms, o.variable),
		Terms:       terms,
		Degree:      s.Degree(),
		Outcome:     s.Outcome(),
		Roots:       s.Roots(),
		Description: s.Describe(),
	}
	if q, ok := s.(*solver.Quadratic); ok {
		d := q.Discriminant()
		rep.Discriminant = &d
	}

	return rep, nil
}
