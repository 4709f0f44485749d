/*
Package truthtable provides lexing, parsing, evaluation, and truth table
generation for propositional logic formulas.

Formulas use named variables (ASCII letters, digits and underscore) and the
connectives ! (not), & (and), | (or), ^ (xor), -> (implies) and <-> (iff).
All binary connectives share one precedence level and associate to the left;
negation binds tighter. Parentheses group sub-expressions. Spaces are ignored.

Table example:

	t, err := truthtable.New("A<->!B", &truthtable.TableOptions{Symbols: []string{"1", "0"}})
	if err != nil {
		// handle error
	}
	for _, row := range t.Rows() {
		_ = row // header first, then one row per assignment
	}

Parser example:

	f, err := truthtable.ParseString("!A->(B|C)")
	if err != nil {
		// handle error
	}
	_ = truthtable.Render(f.Root) // (implies (not A) (grouping (or B C)))

Evaluator example:

	v, err := truthtable.Evaluate(f, truthtable.Assignment{1, 0, 1})
	if err != nil {
		// handle error
	}
	_ = v

Writer example:

	out, err := truthtable.Format(t, &truthtable.FormatOptions{Format: truthtable.FormatMarkdown})
	if err != nil {
		// handle error
	}
	_ = out

Check example:

	issues := truthtable.Check(f, nil)
	if len(issues) != 0 {
		// handle check issues
	}

Errors wrap the sentinels ErrLex, ErrParse, ErrValidation, ErrArity and
ErrNullInput; use errors.Is to classify them and errors.As to reach
*LexError, *ParseError or *ArityError.
*/
package truthtable
