package truthtable

import (
	"io"
	"strings"
)

// TokenKind represents a kind of a token.
type TokenKind int

// token kinds.
const (
	TokenEOF        TokenKind = iota // End of input
	TokenVariable                    // Variable name
	TokenConnective                  // Connective or parenthesis
)

// String returns the kind name.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "eof"
	case TokenVariable:
		return "variable"
	case TokenConnective:
		return "connective"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k TokenKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Operator identifies a connective token.
type Operator int

// connectives.
const (
	OpNone       Operator = iota // Not a connective
	OpOr                         // |
	OpAnd                        // &
	OpXor                        // ^
	OpImplies                    // ->
	OpIff                        // <->
	OpNot                        // !
	OpLeftParen                  // (
	OpRightParen                 // )
)

// Symbol returns the source spelling of the operator.
func (o Operator) Symbol() string {
	switch o {
	case OpOr:
		return "|"
	case OpAnd:
		return "&"
	case OpXor:
		return "^"
	case OpImplies:
		return "->"
	case OpIff:
		return "<->"
	case OpNot:
		return "!"
	case OpLeftParen:
		return "("
	case OpRightParen:
		return ")"
	default:
		return ""
	}
}

// Name returns the lowercase operator name used by Render.
func (o Operator) Name() string {
	switch o {
	case OpOr:
		return "or"
	case OpAnd:
		return "and"
	case OpXor:
		return "xor"
	case OpImplies:
		return "implies"
	case OpIff:
		return "iff"
	case OpNot:
		return "not"
	case OpLeftParen:
		return "left_paren"
	case OpRightParen:
		return "right_paren"
	default:
		return "none"
	}
}

// String implements fmt.Stringer.
func (o Operator) String() string { return o.Name() }

// MarshalText encodes the operator by name.
func (o Operator) MarshalText() ([]byte, error) { return []byte(o.Name()), nil }

// IsBinary reports whether o is one of the five binary connectives.
func (o Operator) IsBinary() bool {
	switch o {
	case OpOr, OpAnd, OpXor, OpImplies, OpIff:
		return true
	default:
		return false
	}
}

// Token is a lexical token of a formula.
type Token struct {
	Lit  string    `json:"lit,omitempty" yaml:"lit,omitempty"` // Variable name or operator symbol
	Kind TokenKind `json:"kind" yaml:"kind"`                   // Kind of the token
	Op   Operator  `json:"op,omitempty" yaml:"op,omitempty"`   // Connective, OpNone otherwise
	Col  int       `json:"col" yaml:"col"`                     // 1-based column in the original text
}

// String returns a debug form like Variable(A), Connective(implies) or EOF.
func (t Token) String() string {
	switch t.Kind {
	case TokenVariable:
		return "Variable(" + t.Lit + ")"
	case TokenConnective:
		return "Connective(" + t.Op.Name() + ")"
	default:
		return "EOF"
	}
}

// is reports whether t is the connective op.
func (t Token) is(op Operator) bool {
	return t.Kind == TokenConnective && t.Op == op
}

// display returns the token as it appears in diagnostics.
func (t Token) display() string {
	switch t.Kind {
	case TokenVariable:
		return t.Lit
	case TokenConnective:
		return t.Op.Symbol()
	default:
		return "end of input"
	}
}

// Tokenize splits a formula into tokens terminated by a TokenEOF sentinel.
// Spaces are removed before scanning, so "A B" is the single variable "AB".
func Tokenize(text string) ([]Token, error) {
	l := newLexer(text)
	tokens := make([]Token, 0, len(l.src)+1)
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

// TokenizeReader reads the whole formula from r and tokenizes it.
// A nil reader fails with ErrNullInput.
func TokenizeReader(r io.Reader) ([]Token, error) {
	if r == nil {
		return nil, ErrNullInput
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Tokenize(string(b))
}

// lexer scans a formula with spaces already removed.
type lexer struct {
	src    []rune // Input without spaces
	cols   []int  // Original column of each rune in src
	pos    int    // Current index into src
	endCol int    // Column reported for the EOF sentinel
}

// newLexer creates a lexer for text.
func newLexer(text string) *lexer {
	l := &lexer{}
	col := 0
	for _, ch := range text {
		col++
		if ch == ' ' {
			continue
		}
		l.src = append(l.src, ch)
		l.cols = append(l.cols, col)
	}
	l.endCol = col + 1

	return l
}

// next returns the next token.
func (l *lexer) next() (Token, error) {
	if l.pos >= len(l.src) {
		return Token{Kind: TokenEOF, Col: l.endCol}, nil
	}

	ch, col := l.src[l.pos], l.cols[l.pos]
	if isIdentPart(ch) {
		return Token{Kind: TokenVariable, Lit: l.readIdent(), Col: col}, nil
	}

	op := OpNone
	switch ch {
	case '&':
		op = OpAnd
	case '|':
		op = OpOr
	case '^':
		op = OpXor
	case '!':
		op = OpNot
	case '(':
		op = OpLeftParen
	case ')':
		op = OpRightParen
	case '-':
		if l.peek(1) == '>' {
			op = OpImplies
		}
	case '<':
		if l.peek(1) == '-' && l.peek(2) == '>' {
			op = OpIff
		}
	}

	if op == OpNone {
		return Token{}, &LexError{Char: ch, Col: col}
	}

	l.pos += len([]rune(op.Symbol()))
	return Token{Kind: TokenConnective, Op: op, Lit: op.Symbol(), Col: col}, nil
}

// peek returns the rune n positions ahead, or 0 past the end.
func (l *lexer) peek(n int) rune {
	if l.pos+n >= len(l.src) {
		return 0
	}

	return l.src[l.pos+n]
}

// readIdent reads a maximal run of identifier characters.
func (l *lexer) readIdent() string {
	var b strings.Builder
	for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		b.WriteRune(l.src[l.pos])
		l.pos++
	}

	return b.String()
}

// isIdentPart checks if a character may appear in a variable name.
func isIdentPart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}
