package check

import "github.com/ltungv/exprcheck/internal/token"

// Scanner classifies every character of a line, in order
type Scanner struct {
	current int
	source  []rune
	codes   []token.Category
}

// NewScanner creates a new scanner over the given line
func NewScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.current = 0
	scanner.source = source
	return scanner
}

// Scan returns one category per character of the source, in the same order
// as the characters appear.
func (scanner *Scanner) Scan() []token.Category {
	if scanner.codes != nil {
		return scanner.codes
	}

	scanner.codes = make([]token.Category, 0, len(scanner.source))
	for scanner.hasNext() {
		scanner.codes = append(scanner.codes, token.Classify(scanner.advance()))
	}
	return scanner.codes
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// Scan classifies the given line
func Scan(line string) []token.Category {
	return NewScanner([]rune(line)).Scan()
}
