package check

import "github.com/ltungv/exprcheck/internal/token"

// Outcome is the verdict on a single line
type Outcome uint

const (
	Valid Outcome = iota
	InvalidExpression
	InvalidLetter
)

func (o Outcome) String() string {
	switch o {
	case Valid:
		return "valid"
	case InvalidExpression:
		return "invalid_expression"
	case InvalidLetter:
		return "invalid_letter"
	}
	return ""
}

// Message is the text that follows the line when the outcome is shown to the
// user.
func (o Outcome) Message() string {
	switch o {
	case InvalidExpression:
		return "is not an expression"
	case InvalidLetter:
		return "contains a letter and is not an expression"
	}
	return "is an expression"
}

// MarshalYAML encodes the outcome by its name
func (o Outcome) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// Validate checks a classified line. The earliest broken rule decides the
// outcome; at a single position the operator rules come before the letter
// rule.
func Validate(codes []token.Category) Outcome {
	previous := token.Other
	for i, code := range codes {
		switch {
		case code == token.OperatorBinary && i == 0:
			return InvalidExpression
		case code == token.OperatorBinary && previous == token.OperatorBinary:
			return InvalidExpression
		case code == token.Letter:
			return InvalidLetter
		}
		previous = code
	}
	return Valid
}

// CheckLine classifies and validates a line
func CheckLine(line string) Outcome {
	return Validate(Scan(line))
}
