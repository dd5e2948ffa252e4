package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		r   rune
		cat Category
	}{
		{'+', OperatorBinary},
		{'*', OperatorBinary},
		{'-', OperatorUnaryMinus},
		{'a', Letter},
		{'z', Letter},
		{'A', Letter},
		{'Z', Letter},
		{'0', Other},
		{'7', Other},
		{'9', Other},
		{' ', Other},
		{'\t', Other},
		{'/', Other},
		{'(', Other},
		{')', Other},
		{'.', Other},
		{'_', Other},
		{'\x00', Other},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.cat, Classify(tc.r), "classify %q", tc.r)
	}
}

func TestClassifyIsPositionIndependent(t *testing.T) {
	assert := assert.New(t)
	for _, r := range "+-*a1 " {
		first := Classify(r)
		for i := 0; i < 3; i++ {
			assert.Equal(first, Classify(r))
		}
	}
}

func TestCategoryString(t *testing.T) {
	testCases := []struct {
		cat  Category
		name string
	}{
		{Other, "OTHER"},
		{OperatorBinary, "OPERATOR_BINARY"},
		{OperatorUnaryMinus, "OPERATOR_UNARY_MINUS"},
		{Letter, "LETTER"},
		{Category(42), ""},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.name, tc.cat.String())
	}
}
