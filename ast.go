package truthtable

import "fmt"

// Expr is a node of a formula AST. The set of implementations is closed:
// *Variable, *Not, *Binary and *Group.
type Expr interface {
	expr()
}

// Variable references a named proposition.
type Variable struct {
	Name string // Variable name
}

// Not negates its operand.
type Not struct {
	Operand Expr // Negated expression
}

// Binary applies one of the five binary connectives.
type Binary struct {
	Left  Expr     // Left operand
	Right Expr     // Right operand
	Op    Operator // OpOr, OpAnd, OpXor, OpImplies or OpIff
}

// Group is a parenthesized sub-expression.
type Group struct {
	Inner Expr // Grouped expression
}

// expr implements the Expr interface.
func (*Variable) expr() {}

// expr implements the Expr interface.
func (*Not) expr() {}

// expr implements the Expr interface.
func (*Binary) expr() {}

// expr implements the Expr interface.
func (*Group) expr() {}

// Visitor handles every Expr kind. Adding a kind adds a method here, so
// every consumer stops compiling until it handles the new node.
type Visitor[T any] interface {
	VisitVariable(v *Variable) T
	VisitNot(n *Not) T
	VisitBinary(b *Binary) T
	VisitGroup(g *Group) T
}

// Visit dispatches e to the matching method of v.
func Visit[T any](e Expr, v Visitor[T]) T {
	switch n := e.(type) {
	case *Variable:
		return v.VisitVariable(n)
	case *Not:
		return v.VisitNot(n)
	case *Binary:
		return v.VisitBinary(n)
	case *Group:
		return v.VisitGroup(n)
	default:
		panic(fmt.Sprintf("truthtable: unexpected expression %T", e))
	}
}

// VariableOrder lists distinct variable names in order of first appearance.
type VariableOrder []string

// Index returns the position of name, or -1.
func (o VariableOrder) Index(name string) int {
	for i, n := range o {
		if n == name {
			return i
		}
	}

	return -1
}

// Formula is a parsed formula: the AST root plus the variable order
// captured while parsing it.
type Formula struct {
	Root Expr          // AST root, nil for an empty token stream
	Vars VariableOrder // Distinct variables in first-appearance order
}

// String renders the AST in parenthesized prefix form.
func (f *Formula) String() string {
	if f == nil || f.Root == nil {
		return ""
	}

	return Render(f.Root)
}
