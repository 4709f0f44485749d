package truthtable

import (
	"errors"
	"fmt"
)

var (
	// ErrNullInput indicates that no input was supplied at all.
	ErrNullInput = errors.New("null input")

	// ErrLex indicates a lexer failure.
	ErrLex = errors.New("lex error")

	// ErrParse indicates a parser failure.
	ErrParse = errors.New("parse error")

	// ErrValidation indicates invalid arguments (blank formula, bad symbols, bad format).
	ErrValidation = errors.New("validation error")

	// ErrArity indicates an assignment whose length differs from the variable count.
	ErrArity = errors.New("arity error")
)

// LexError reports an unrecognized character.
type LexError struct {
	Char rune // Offending character
	Col  int  // 1-based column in the original text
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("%s at col %d: unknown symbol %q", ErrLex, e.Col, string(e.Char))
}

// Unwrap returns ErrLex.
func (e *LexError) Unwrap() error { return ErrLex }

// ParseError reports a grammar violation.
type ParseError struct {
	Msg string // Human-readable diagnostic
	Col int    // 1-based column of the offending token, 0 when unknown
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Col > 0 {
		return fmt.Sprintf("%s at col %d: %s", ErrParse, e.Col, e.Msg)
	}

	return fmt.Sprintf("%s: %s", ErrParse, e.Msg)
}

// Unwrap returns ErrParse.
func (e *ParseError) Unwrap() error { return ErrParse }

// ArityError reports an assignment of the wrong length.
type ArityError struct {
	Want int // Number of variables in the formula
	Got  int // Number of supplied bits
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: expected %d truth values, got %d", ErrArity, e.Want, e.Got)
}

// Unwrap returns ErrArity.
func (e *ArityError) Unwrap() error { return ErrArity }

// ErrorKind classifies err by its sentinel: "null_input", "lex", "parse",
// "validation", "arity" or "internal".
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrNullInput):
		return "null_input"
	case errors.Is(err, ErrLex):
		return "lex"
	case errors.Is(err, ErrParse):
		return "parse"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrArity):
		return "arity"
	default:
		return "internal"
	}
}

// validationf formats an error wrapping ErrValidation.
func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
