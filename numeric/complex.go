// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"strconv"
)

// Complex is a root value a + b·i. Real roots carry Imag == 0.
type Complex struct {
	Real float64 `json:"real" yaml:"real"`
	Imag float64 `json:"imag" yaml:"imag"`
}

// IsReal reports whether the imaginary part is exactly zero.
func (z Complex) IsReal() bool { return z.Imag == 0 }

// String renders a real value as a plain number and a complex value as
// "real±imag i" without spaces, e.g. "-0.5-0.8660254037844386i".
func (z Complex) String() string {
	if z.IsReal() {
		return Format(z.Real)
	}
	sign := "+"
	if math.Signbit(z.Imag) {
		sign = "-"
	}

	return Format(z.Real) + sign + Format(math.Abs(z.Imag)) + "i"
}

// Format renders v with the fewest digits that read back to the same float64,
// never in exponent notation. Negative zero is printed as "0".
func Format(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
