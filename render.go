package truthtable

import "strings"

// Render returns the parenthesized prefix form of e, for example
// "(implies (not A) (grouping (or B C)))". A nil expression renders empty.
func Render(e Expr) string {
	if e == nil {
		return ""
	}

	var b strings.Builder
	Visit[struct{}](e, prefixWriter{b: &b})
	return b.String()
}

// Infix returns e in source syntax with spaces around binary connectives.
// Re-parsing the result yields an equivalent tree.
func Infix(e Expr) string {
	if e == nil {
		return ""
	}

	return Visit[string](e, infixRenderer{})
}

// prefixWriter writes the prefix form into b.
type prefixWriter struct {
	b *strings.Builder
}

// VisitVariable implements Visitor.
func (w prefixWriter) VisitVariable(v *Variable) struct{} {
	w.b.WriteString(v.Name)
	return struct{}{}
}

// VisitNot implements Visitor.
func (w prefixWriter) VisitNot(n *Not) struct{} {
	w.b.WriteString("(not ")
	Visit[struct{}](n.Operand, w)
	w.b.WriteByte(')')
	return struct{}{}
}

// VisitBinary implements Visitor.
func (w prefixWriter) VisitBinary(b *Binary) struct{} {
	w.b.WriteByte('(')
	w.b.WriteString(b.Op.Name())
	w.b.WriteByte(' ')
	Visit[struct{}](b.Left, w)
	w.b.WriteByte(' ')
	Visit[struct{}](b.Right, w)
	w.b.WriteByte(')')
	return struct{}{}
}

// VisitGroup implements Visitor.
func (w prefixWriter) VisitGroup(g *Group) struct{} {
	w.b.WriteString("(grouping ")
	Visit[struct{}](g.Inner, w)
	w.b.WriteByte(')')
	return struct{}{}
}

// infixRenderer renders source syntax.
type infixRenderer struct{}

// VisitVariable implements Visitor.
func (infixRenderer) VisitVariable(v *Variable) string { return v.Name }

// VisitNot implements Visitor.
func (r infixRenderer) VisitNot(n *Not) string {
	return "!" + Visit[string](n.Operand, r)
}

// VisitBinary implements Visitor.
func (r infixRenderer) VisitBinary(b *Binary) string {
	return Visit[string](b.Left, r) + " " + b.Op.Symbol() + " " + Visit[string](b.Right, r)
}

// VisitGroup implements Visitor.
func (r infixRenderer) VisitGroup(g *Group) string {
	return "(" + Visit[string](g.Inner, r) + ")"
}
