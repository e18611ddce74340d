// SPDX-License-Identifier: MIT

package polynomial

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/computor/numeric"
)

// Reduced renders terms as "c0 * X^0 + c1 * X^1 ... = 0" using variable as
// the unknown. Terms are printed in the order given.
func Reduced(terms []Term, variable byte) string {
	var b strings.Builder
	for i, t := range terms {
		neg := t.Coefficient < 0
		switch {
		case i == 0 && neg:
			b.WriteString("-")
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		b.WriteString(numeric.Format(math.Abs(t.Coefficient)))
		b.WriteString(" * ")
		b.WriteByte(variable)
		b.WriteByte('^')
		b.WriteString(strconv.FormatUint(uint64(t.Degree), 10))
	}
	b.WriteString(" = 0")

	return b.String()
}
