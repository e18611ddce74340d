// SPDX-License-Identifier: MIT

package polynomial

import (
	"maps"
	"slices"
)

// Term is one exponent/coefficient pair of a reduced polynomial.
type Term struct {
	Degree      uint32  `json:"degree" yaml:"degree"`
	Coefficient float64 `json:"coefficient" yaml:"coefficient"`
}

// Polynomial is a degree map. The zero value is not ready; use New.
type Polynomial struct {
	coeffs map[uint32]float64
}

// New returns a polynomial holding only the constant term 0.
func New() *Polynomial {
	return &Polynomial{coeffs: map[uint32]float64{0: 0}}
}

// FromTerms builds a polynomial by adding every term in order.
func FromTerms(terms ...Term) *Polynomial {
	p := New()
	for _, t := range terms {
		p.Add(t.Degree, t.Coefficient)
	}

	return p
}

// Add accumulates coeff into the given exponent. A non-zero exponent whose sum
// becomes exactly 0.0 is removed.
func (p *Polynomial) Add(degree uint32, coeff float64) {
	sum := p.coeffs[degree] + coeff
	if sum == 0 && degree != 0 {
		delete(p.coeffs, degree)

		return
	}
	p.coeffs[degree] = sum
}

// Coefficient returns the coefficient of degree and whether it is present.
func (p *Polynomial) Coefficient(degree uint32) (float64, bool) {
	c, ok := p.coeffs[degree]

	return c, ok
}

// Degree returns the highest present exponent.
func (p *Polynomial) Degree() uint32 {
	var deg uint32
	for d := range p.coeffs {
		deg = max(deg, d)
	}

	return deg
}

// Len returns the number of present exponents (always ≥ 1).
func (p *Polynomial) Len() int { return len(p.coeffs) }

// Terms returns the present terms in ascending exponent order.
func (p *Polynomial) Terms() []Term {
	degrees := slices.Sorted(maps.Keys(p.coeffs))
	out := make([]Term, len(degrees))
	for i, d := range degrees {
		out[i] = Term{Degree: d, Coefficient: p.coeffs[d]}
	}

	return out
}

// Clone returns an independent copy.
func (p *Polynomial) Clone() *Polynomial {
	return &Polynomial{coeffs: maps.Clone(p.coeffs)}
}

// Equal reports whether both polynomials hold exactly the same entries.
func (p *Polynomial) Equal(other *Polynomial) bool {
	if other == nil {
		return false
	}

	return maps.Equal(p.coeffs, other.coeffs)
}

// String renders the reduced form with the default variable X.
func (p *Polynomial) String() string {
	return Reduced(p.Terms(), 'X')
}
