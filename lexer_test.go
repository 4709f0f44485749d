package truthtable

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("A->B")
	require.NoError(t, err)

	want := []string{"Variable(A)", "Connective(implies)", "Variable(B)", "EOF"}
	require.Len(t, tokens, len(want))
	for i, tok := range tokens {
		assert.Equal(t, want[i], tok.String(), "token %d", i)
	}
}

func TestTokenizeConnectives(t *testing.T) {
	tokens, err := Tokenize("a_1 & b | c ^ !d -> (e <-> F2)")
	require.NoError(t, err)

	var ops []Operator
	var names []string
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenVariable:
			names = append(names, tok.Lit)
		case TokenConnective:
			ops = append(ops, tok.Op)
		}
	}

	assert.Equal(t, []string{"a_1", "b", "c", "d", "e", "F2"}, names)
	assert.Equal(t, []Operator{OpAnd, OpOr, OpXor, OpNot, OpImplies, OpLeftParen, OpIff, OpRightParen}, ops)
	assert.Equal(t, TokenEOF, tokens[len(tokens)-1].Kind)
}

func TestTokenizeEmpty(t *testing.T) {
	for _, in := range []string{"", " ", "     "} {
		tokens, err := Tokenize(in)
		require.NoError(t, err, "input %q", in)
		require.Len(t, tokens, 1)
		assert.Equal(t, TokenEOF, tokens[0].Kind)
	}
}

func TestTokenizeRemovesSpacesFirst(t *testing.T) {
	tokens, err := Tokenize("A B - > C < - > D")
	require.NoError(t, err)
	require.Len(t, tokens, 6)

	assert.Equal(t, "AB", tokens[0].Lit)
	assert.Equal(t, OpImplies, tokens[1].Op)
	assert.Equal(t, "C", tokens[2].Lit)
	assert.Equal(t, OpIff, tokens[3].Op)
	assert.Equal(t, "D", tokens[4].Lit)
}

func TestTokenizeColumns(t *testing.T) {
	tokens, err := Tokenize("A  <-> B")
	require.NoError(t, err)

	cols := make([]int, len(tokens))
	for i, tok := range tokens {
		cols[i] = tok.Col
	}
	assert.Equal(t, []int{1, 4, 8, 9}, cols)
}

func TestInvalidSymbolReturnsLexError(t *testing.T) {
	symbols := []string{
		"-", "?", "$", "%", "[", "]", "'", "\"",
		"/", "\\", "+", "<", ">", "=", ".",
		",", ":", ";", "{", "}", "#", "*", "@", "\t", "\n", "é",
	}
	for _, s := range symbols {
		_, err := Tokenize("A" + s + "B")
		require.ErrorIs(t, err, ErrLex, "symbol %q", s)

		var lexErr *LexError
		require.ErrorAs(t, err, &lexErr)
		assert.Equal(t, []rune(s)[0], lexErr.Char)
		assert.Equal(t, 2, lexErr.Col)
	}
}

func TestLexErrorStopsAtFirstCharacter(t *testing.T) {
	_, err := Tokenize("A & ? $")

	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, '?', lexErr.Char)
	assert.Equal(t, 5, lexErr.Col)
	assert.Contains(t, err.Error(), `"?"`)
}

func TestTokenizeIsTotalOnValidAlphabet(t *testing.T) {
	pieces := []string{"A", "b1", "_x", "9", "&", "|", "^", "!", "(", ")", "->", "<->", " "}
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 500; i++ {
		var b strings.Builder
		for j := 0; j < r.IntN(20); j++ {
			b.WriteString(pieces[r.IntN(len(pieces))])
		}

		tokens, err := Tokenize(b.String())
		require.NoError(t, err, "input %q", b.String())
		assert.Equal(t, TokenEOF, tokens[len(tokens)-1].Kind)
	}
}

func TestTokenizeReader(t *testing.T) {
	_, err := TokenizeReader(nil)
	require.ErrorIs(t, err, ErrNullInput)

	tokens, err := TokenizeReader(strings.NewReader("!X"))
	require.NoError(t, err)
	assert.Len(t, tokens, 3)
}
