package token

import "unicode"

// Category is the grammar role assigned to a single character of a line.
type Category uint

const (
	// Other covers digits, whitespace and any symbol without its own role
	Other Category = iota
	// OperatorBinary is '+' or '*'
	OperatorBinary
	// OperatorUnaryMinus is '-'
	OperatorUnaryMinus
	// Letter is any alphabetic character, regardless of case
	Letter
)

func (c Category) String() string {
	switch c {
	case Other:
		return "OTHER"
	case OperatorBinary:
		return "OPERATOR_BINARY"
	case OperatorUnaryMinus:
		return "OPERATOR_UNARY_MINUS"
	case Letter:
		return "LETTER"
	}
	return ""
}

// Classify returns the category of the given character. The result depends on
// nothing but the character itself.
func Classify(r rune) Category {
	switch r {
	case '+', '*':
		return OperatorBinary
	case '-':
		return OperatorUnaryMinus
	}
	if unicode.IsLetter(r) {
		return Letter
	}
	return Other
}
