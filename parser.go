package truthtable

import (
	"fmt"
	"io"
)

// Parse builds a Formula from tokens produced by Tokenize.
// A stream holding only the EOF sentinel yields a Formula with a nil Root.
func Parse(tokens []Token) (*Formula, error) {
	p := newParser(tokens)
	return p.parseFormula()
}

// ParseString tokenizes and parses text.
func ParseString(text string) (*Formula, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}

	return Parse(tokens)
}

// Decode reads a formula from r and parses it.
func Decode(r io.Reader) (*Formula, error) {
	tokens, err := TokenizeReader(r)
	if err != nil {
		return nil, err
	}

	return Parse(tokens)
}

// parser is a one-token-lookahead recursive descent parser. It owns its
// cursor and the collected variable order, so parsers never share state.
type parser struct {
	tokens []Token        // Token stream ending with TokenEOF
	pos    int            // Cursor into tokens
	vars   VariableOrder  // Variables in first-appearance order
	seen   map[string]int // Index of each variable in vars
}

// newParser creates a parser over tokens.
func newParser(tokens []Token) *parser {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != TokenEOF {
		// Tolerate streams built by hand without the sentinel.
		tokens = append(tokens[:n:n], Token{Kind: TokenEOF})
	}

	return &parser{tokens: tokens, seen: make(map[string]int)}
}

// parseFormula parses the whole stream.
func (p *parser) parseFormula() (*Formula, error) {
	f := &Formula{Vars: VariableOrder{}}
	if p.atEnd() {
		return f, nil
	}

	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if !p.atEnd() {
		tok := p.peek()
		if tok.is(OpRightParen) {
			return nil, p.errorf(tok, "unmatched right parenthesis")
		}

		return nil, p.errorf(tok, "unexpected token at end of input")
	}

	f.Root = root
	f.Vars = p.vars
	return f, nil
}

// parseExpr parses unary ( binop unary )* folding to the left.
func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.peekBinary() {
		opTok := p.next()
		if tok := p.peek(); tok.is(OpRightParen) || tok.Kind == TokenEOF {
			return nil, p.errorf(tok, "expected expression or variable after operator '%s'", opTok.Op.Symbol())
		}

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		left = &Binary{Op: opTok.Op, Left: left, Right: right}
	}

	return left, nil
}

// parseUnary parses '!' unary | atom.
func (p *parser) parseUnary() (Expr, error) {
	if p.peek().is(OpNot) {
		p.next()
		if tok := p.peek(); tok.is(OpRightParen) || tok.Op.IsBinary() {
			return nil, p.errorf(tok, "expected expression or variable after '!'")
		}

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &Not{Operand: operand}, nil
	}

	return p.parseAtom()
}

// parseAtom parses VARIABLE | '(' expr ')'.
func (p *parser) parseAtom() (Expr, error) {
	tok := p.peek()
	switch {
	case tok.Kind == TokenVariable:
		p.next()
		p.addVar(tok.Lit)
		if err := p.checkAdjacent("a variable or expression"); err != nil {
			return nil, err
		}

		return &Variable{Name: tok.Lit}, nil

	case tok.is(OpLeftParen):
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(OpRightParen, "expected ')' after expression"); err != nil {
			return nil, err
		}

		if err := p.checkAdjacent("')'"); err != nil {
			return nil, err
		}

		return &Group{Inner: inner}, nil

	default:
		return nil, p.errorf(tok, "invalid syntax")
	}
}

// checkAdjacent rejects '(' or '!' directly after a completed primary.
func (p *parser) checkAdjacent(after string) error {
	tok := p.peek()
	if tok.is(OpLeftParen) || tok.is(OpNot) {
		return p.errorf(tok, "'%s' not allowed immediately after %s", tok.Op.Symbol(), after)
	}

	return nil
}

// addVar records name the first time it is seen.
func (p *parser) addVar(name string) {
	if _, ok := p.seen[name]; ok {
		return
	}

	p.seen[name] = len(p.vars)
	p.vars = append(p.vars, name)
}

// peek returns the current token without consuming it.
func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

// next consumes and returns the current token. The cursor never moves
// past the EOF sentinel.
func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if !p.atEnd() {
		p.pos++
	}

	return tok
}

// atEnd reports whether the cursor is at the EOF sentinel.
func (p *parser) atEnd() bool {
	return p.tokens[p.pos].Kind == TokenEOF
}

// peekBinary reports whether the current token is a binary connective.
func (p *parser) peekBinary() bool {
	tok := p.peek()
	return tok.Kind == TokenConnective && tok.Op.IsBinary()
}

// expect consumes the connective op or fails with msg.
func (p *parser) expect(op Operator, msg string) (Token, error) {
	tok := p.peek()
	if !tok.is(op) {
		return tok, p.errorf(tok, "%s", msg)
	}

	return p.next(), nil
}

// errorf builds a ParseError positioned at tok.
func (p *parser) errorf(tok Token, format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Col: tok.Col}
}
