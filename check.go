package truthtable

// IssueLevel represents severity of a check issue.
type IssueLevel string

const (
	// IssueError indicates an error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a warning.
	IssueWarning IssueLevel = "warning"
)

// issue codes.
const (
	CodeEmptyFormula      = "empty_formula"
	CodeDoubleNegation    = "double_negation"
	CodeRedundantGrouping = "redundant_grouping"
	CodeIdenticalOperands = "identical_operands"
	CodeEqualSymbols      = "equal_symbols"
	CodeInvalidSymbols    = "invalid_symbols"
)

// Issue represents a check issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Offending sub-expression in infix form
}

// Check reports stylistic problems of a parsed formula. It never rewrites
// the formula.
func Check(f *Formula, opt *CheckOptions) []Issue {
	if f == nil || f.Root == nil {
		return []Issue{{Level: IssueError, Code: CodeEmptyFormula, Message: "formula is empty"}}
	}

	c := &checker{opt: opt.normalize()}
	if g, ok := f.Root.(*Group); ok && !c.opt.DisableGroupingCheck {
		c.add(IssueWarning, CodeRedundantGrouping, "whole formula is parenthesized", g)
	}
	Visit[struct{}](f.Root, c)

	return c.issues
}

// CheckSymbols warns when the truth and falsity symbols cannot be told apart.
func CheckSymbols(opt *TableOptions) []Issue {
	var symbols TableOptions
	if opt != nil {
		symbols.Symbols = opt.Symbols
	}

	topt, err := symbols.normalize()
	if err != nil {
		return []Issue{{Level: IssueError, Code: CodeInvalidSymbols, Message: err.Error()}}
	}

	if topt.Symbols[0] == topt.Symbols[1] {
		return []Issue{{
			Level:   IssueWarning,
			Code:    CodeEqualSymbols,
			Message: "truth and falsity symbols are equal",
			Path:    topt.Symbols[0],
		}}
	}

	return nil
}

// checker collects issues while walking the AST.
type checker struct {
	opt    CheckOptions // Normalized options
	issues []Issue      // Collected issues
}

// add records an issue located at e.
func (c *checker) add(level IssueLevel, code, msg string, e Expr) {
	c.issues = append(c.issues, Issue{Level: level, Code: code, Message: msg, Path: Infix(e)})
}

// VisitVariable implements Visitor.
func (c *checker) VisitVariable(*Variable) struct{} { return struct{}{} }

// VisitNot implements Visitor.
func (c *checker) VisitNot(n *Not) struct{} {
	if _, ok := n.Operand.(*Not); ok && !c.opt.DisableNegationCheck {
		c.add(IssueWarning, CodeDoubleNegation, "double negation", n)
	}

	return Visit[struct{}](n.Operand, c)
}

// VisitBinary implements Visitor.
func (c *checker) VisitBinary(b *Binary) struct{} {
	if !c.opt.DisableOperandCheck && Render(unwrapGroups(b.Left)) == Render(unwrapGroups(b.Right)) {
		c.add(IssueWarning, CodeIdenticalOperands, "operands of '"+b.Op.Symbol()+"' are identical", b)
	}

	Visit[struct{}](b.Left, c)
	return Visit[struct{}](b.Right, c)
}

// VisitGroup implements Visitor.
func (c *checker) VisitGroup(g *Group) struct{} {
	if !c.opt.DisableGroupingCheck {
		switch g.Inner.(type) {
		case *Variable, *Group, *Not:
			c.add(IssueWarning, CodeRedundantGrouping, "parentheses around a single operand", g)
		}
	}

	return Visit[struct{}](g.Inner, c)
}

// unwrapGroups strips enclosing groups.
func unwrapGroups(e Expr) Expr {
	for {
		g, ok := e.(*Group)
		if !ok {
			return e
		}
		e = g.Inner
	}
}
