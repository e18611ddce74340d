// SPDX-License-Identifier: MIT

package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/computor/numeric"
	"github.com/stretchr/testify/assert"
)

// TestSqrt_KnownValues checks the documented tolerance on simple inputs.
func TestSqrt_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"four", 4, 2},
		{"two", 2, 1.41421356},
		{"one", 1, 1},
		{"quarter", 0.25, 0.5},
		{"three", 3, 1.7320508},
		{"large", 1e6, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := numeric.Sqrt(tt.in)
			assert.InDelta(t, tt.want, got, 1e-6, "Sqrt(%v)", tt.in)
			assert.LessOrEqual(t, math.Abs(got*got-tt.in), numeric.DefaultTolerance)
		})
	}
}

// TestSqrt_Degenerate covers the inputs outside the Newton contract.
func TestSqrt_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, numeric.Sqrt(0), "zero must short-circuit")
	assert.True(t, math.IsNaN(numeric.Sqrt(-1)), "negative input yields NaN")
	assert.True(t, math.IsNaN(numeric.Sqrt(math.NaN())), "NaN propagates")
	assert.True(t, math.IsInf(numeric.Sqrt(math.Inf(1)), 1), "+Inf stays +Inf")
}

// TestSqrt_TerminatesOnHugeInput ensures inputs whose ulp exceeds the tolerance
// still return a close relative approximation instead of spinning forever.
func TestSqrt_TerminatesOnHugeInput(t *testing.T) {
	for _, x := range []float64{1e20, 1e100, math.MaxFloat64} {
		got := numeric.Sqrt(x)
		assert.InEpsilon(t, math.Sqrt(x), got, 1e-12, "Sqrt(%g)", x)
	}
}

// TestSqrt_TinyInput stops as soon as r² is within tolerance of x.
func TestSqrt_TinyInput(t *testing.T) {
	got := numeric.Sqrt(1e-12)
	assert.LessOrEqual(t, math.Abs(got*got-1e-12), numeric.DefaultTolerance)
}

// TestSqrtTol_Tighter verifies a smaller tolerance yields a closer root.
func TestSqrtTol_Tighter(t *testing.T) {
	got := numeric.SqrtTol(2, 1e-14)
	assert.InDelta(t, math.Sqrt2, got, 1e-14)

	// invalid tolerance falls back to the default
	assert.InDelta(t, math.Sqrt2, numeric.SqrtTol(2, -1), 1e-6)
}

// TestComplex_String checks real and complex rendering.
func TestComplex_String(t *testing.T) {
	assert.Equal(t, "1", numeric.Complex{Real: 1}.String())
	assert.Equal(t, "-0.5-0.25i", numeric.Complex{Real: -0.5, Imag: -0.25}.String())
	assert.Equal(t, "-0.5+0.25i", numeric.Complex{Real: -0.5, Imag: 0.25}.String())
	assert.Equal(t, "0+2i", numeric.Complex{Imag: 2}.String())
}

// TestFormat checks shortest decimal output and -0 normalisation.
func TestFormat(t *testing.T) {
	assert.Equal(t, "0", numeric.Format(math.Copysign(0, -1)))
	assert.Equal(t, "42", numeric.Format(42))
	assert.Equal(t, "-9.3", numeric.Format(-9.3))
	assert.Equal(t, "100000000000000000000", numeric.Format(1e20))
}
