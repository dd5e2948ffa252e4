package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	g, err := Load()
	require.NoError(t, err)

	assert := assert.New(t)
	for _, name := range []string{"Expr", "Integer", "digit"} {
		assert.Contains(g, name)
	}
	assert.Len(g, 3)
}

func TestSource(t *testing.T) {
	assert := assert.New(t)

	src := Source()
	assert.Contains(src, `Expr    = Expr "+" Expr`)
	assert.Contains(src, `"-" Expr`)
}

func TestParseRejectsBrokenGrammars(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{"syntax", `Expr = "+" `},
		{"undefined", `Expr = Integer .`},
		{"unreachable", "Expr = \"-\" Expr | \"1\" .\nOther = \"2\" ."},
		{"missing start", `Integer = "1" .`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse(tc.name+".ebnf", []byte(tc.src))
			assert.Error(t, err)
		})
	}
}
