// SPDX-License-Identifier: MIT

package parser

import (
	"math"

	"github.com/katalvlaran/computor/lexer"
	"github.com/katalvlaran/computor/polynomial"
)

// side tells which member of the equation a term belongs to.
type side int

const (
	left side = iota
	right
)

// sign returns the multiplier applied to a term of this side.
func (s side) sign() float64 {
	if s == right {
		return -1
	}

	return 1
}

// term is a recognised (coefficient, exponent) pair before it is merged.
type term struct {
	coeff  float64
	degree uint32
}

// Parser walks a token sequence with one forward cursor and one-token pushback.
// A Parser may be reused; it is not safe for concurrent use.
type Parser struct {
	tokens []lexer.Token
	cursor int
	poly   *polynomial.Polynomial
}

// New returns an idle Parser.
func New() *Parser { return &Parser{} }

// Parse reduces tokens to a degree map with a fresh Parser.
func Parse(tokens []lexer.Token) (*polynomial.Polynomial, error) {
	p := New()
	if err := p.Run(tokens); err != nil {
		return nil, err
	}

	return p.Polynomial(), nil
}

// Polynomial returns the degree map of the last successful Run, or nil.
func (p *Parser) Polynomial() *polynomial.Polynomial { return p.poly }

// Run parses tokens into a new degree map, dropping the previous one.
// The tokens slice is read, never modified.
func (p *Parser) Run(tokens []lexer.Token) error {
	p.tokens, p.cursor, p.poly = tokens, 0, nil

	poly := polynomial.New()
	if err := p.equation(poly); err != nil {
		return err
	}
	p.poly = poly

	return nil
}

// next returns the token under the cursor and advances.
func (p *Parser) next() (lexer.Token, error) {
	if p.cursor >= len(p.tokens) {
		return lexer.Token{}, &Error{Err: ErrNoTokenProvided}
	}
	tok := p.tokens[p.cursor]
	p.cursor++

	return tok, nil
}

// backup pushes the last token back.
func (p *Parser) backup() { p.cursor-- }

// expect consumes one token and checks its kind.
func (p *Parser) expect(kind lexer.Kind) error {
	tok, err := p.next()
	if err != nil {
		return err
	}
	if tok.Kind != kind {
		return unexpected(tok)
	}

	return nil
}

// equation := expression '=' expression End
func (p *Parser) equation(poly *polynomial.Polynomial) error {
	if err := p.expression(poly, left); err != nil {
		return err
	}
	if err := p.expect(lexer.Equal); err != nil {
		return err
	}
	if err := p.expression(poly, right); err != nil {
		return err
	}

	return p.expect(lexer.End)
}

// expression := [ '+' | '-' ] term ( ( '+' | '-' ) term )*
//
// The leading sign is optional; every later term requires one. The loop stops
// at the first token that is neither '+' nor '-' and leaves it unread.
func (p *Parser) expression(poly *polynomial.Polynomial, s side) error {
	for first := true; ; first = false {
		tok, err := p.next()
		if err != nil {
			return err
		}
		sign := s.sign()
		switch tok.Kind {
		case lexer.Plus:
		case lexer.Minus:
			sign = -sign
		default:
			p.backup()
			if !first {
				return nil
			}
		}

		t, err := p.term()
		if err != nil {
			return err
		}
		poly.Add(t.degree, sign*t.coeff)
	}
}

// term := Number termTail | Variable degree
func (p *Parser) term() (term, error) {
	tok, err := p.next()
	if err != nil {
		return term{}, err
	}

	var deg uint32
	switch tok.Kind {
	case lexer.Number:
		deg, err = p.termTail()
		return term{coeff: tok.Value, degree: deg}, err
	case lexer.Variable:
		deg, err = p.degree()
		return term{coeff: 1, degree: deg}, err
	}

	return term{}, unexpected(tok)
}

// termTail := '*' Variable degree | Variable degree | ε
func (p *Parser) termTail() (uint32, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	switch tok.Kind {
	case lexer.Mult:
		if err = p.expect(lexer.Variable); err != nil {
			return 0, err
		}
		return p.degree()
	case lexer.Variable:
		return p.degree()
	}
	p.backup()

	return 0, nil
}

// degree := '^' Number | ε
func (p *Parser) degree() (uint32, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	if tok.Kind != lexer.Power {
		p.backup()
		return 1, nil
	}

	if tok, err = p.next(); err != nil {
		return 0, err
	}
	if tok.Kind != lexer.Number {
		return 0, unexpected(tok)
	}
	v := tok.Value
	if v != math.Trunc(v) || v < 0 || v > math.MaxUint32 {
		return 0, &Error{Err: ErrNotUIntegerDegree, Token: tok}
	}

	return uint32(v), nil
}
