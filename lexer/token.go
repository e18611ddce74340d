// SPDX-License-Identifier: MIT

package lexer

import (
	"fmt"

	"github.com/katalvlaran/computor/numeric"
)

// Kind classifies a token.
type Kind uint8

const (
	Plus     Kind = iota // +
	Minus                // -
	Mult                 // *
	Power                // ^
	Equal                // =
	Variable             // the unknown, X by default
	Number               // numeric literal
	End                  // end of input
)

var kindNames = [...]string{
	Plus:     "Plus",
	Minus:    "Minus",
	Mult:     "Mult",
	Power:    "Power",
	Equal:    "Equal",
	Variable: "Variable",
	Number:   "Number",
	End:      "End",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Token is a classified lexeme pointing back into the source text.
type Token struct {
	Kind   Kind
	Value  float64 // set for Number only
	Offset int     // byte offset of the first character
	Length int     // byte length of the lexeme
	Text   string  // lexeme as written; empty for End
}

// String renders the token the way it reads in an equation; End prints as END.
func (t Token) String() string {
	switch t.Kind {
	case Number:
		return numeric.Format(t.Value)
	case End:
		return "END"
	}

	return t.Text
}
