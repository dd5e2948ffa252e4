// Package grammar holds the reference grammar of the expressions checked by
// exprcheck.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"

	"golang.org/x/exp/ebnf"
)

// Filename is the name the grammar is parsed under, used in error positions
const Filename = "grammar.ebnf"

// Start is the production every expression is derived from
const Start = "Expr"

//go:embed grammar.ebnf
var source []byte

// Source returns the grammar document
func Source() string {
	return string(source)
}

// Load parses the grammar document and verifies that every production is
// defined and reachable from Start.
func Load() (ebnf.Grammar, error) {
	return parse(Filename, source)
}

func parse(filename string, src []byte) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}
