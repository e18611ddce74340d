// SPDX-License-Identifier: MIT

package computor

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/computor/numeric"
	"github.com/katalvlaran/computor/polynomial"
	"github.com/katalvlaran/computor/solver"
)

// Report is the outcome of one Solve call.
type Report struct {
	Equation     string            `json:"equation" yaml:"equation"`
	ReducedForm  string            `json:"reduced_form" yaml:"reduced_form"`
	Terms        []polynomial.Term `json:"terms" yaml:"terms"`
	Degree       uint32            `json:"degree" yaml:"degree"`
	Outcome      solver.Outcome    `json:"outcome" yaml:"outcome"`
	Discriminant *float64          `json:"discriminant,omitempty" yaml:"discriminant,omitempty"` // quadratic only
	Roots        []numeric.Complex `json:"roots,omitempty" yaml:"roots,omitempty"`

	// Description is the strategy's human-readable text, one item per line.
	Description string `json:"-" yaml:"-"`
}

// String returns Description.
func (r Report) String() string { return r.Description }

// JSON encodes the report with two-space indentation.
// Returns ErrNonFinite if any number is NaN or ±Inf.
func (r Report) JSON() ([]byte, error) {
	if !r.finite() {
		return nil, fmt.Errorf("JSON: %w", ErrNonFinite)
	}

	return json.MarshalIndent(r, "", "  ")
}

// YAML encodes the report; NaN and ±Inf are written as .nan / ±.inf.
func (r Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// finite reports whether every float in the report is finite.
func (r Report) finite() bool {
	ok := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	for _, t := range r.Terms {
		if !ok(t.Coefficient) {
			return false
		}
	}
	for _, z := range r.Roots {
		if !ok(z.Real) || !ok(z.Imag) {
			return false
		}
	}

	return r.Discriminant == nil || ok(*r.Discriminant)
}

// Format selects how Write renders a report.
type Format uint8

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

var formatNames = [...]string{FormatText: "text", FormatJSON: "json", FormatYAML: "yaml"}

// String returns the format name.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}

	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ParseFormat maps "text", "json" or "yaml" (any case) to a Format.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, name) {
			return Format(i), nil
		}
	}

	return FormatText, fmt.Errorf("ParseFormat(%q): %w", name, ErrUnknownFormat)
}

// Write renders the report to w in format f.
func (r Report) Write(w io.Writer, f Format) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatText:
		_, err = io.WriteString(w, r.Description)
		return err
	case FormatJSON:
		if data, err = r.JSON(); err != nil {
			return err
		}
		data = append(data, '\n')
	case FormatYAML:
		if data, err = r.YAML(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("Write(%s): %w", f, ErrUnknownFormat)
	}
	_, err = w.Write(data)

	return err
}
