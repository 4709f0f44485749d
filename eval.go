package truthtable

import "fmt"

// Bit is a truth value, 0 or 1.
type Bit uint8

// Assignment binds Vars[i] of a Formula to its i-th bit.
type Assignment []Bit

// BitOf converts a bool to a Bit.
func BitOf(b bool) Bit {
	if b {
		return 1
	}

	return 0
}

// Evaluate computes the value of f under a. It fails with an ArityError
// when len(a) differs from len(f.Vars).
func Evaluate(f *Formula, a Assignment) (Bit, error) {
	if f == nil || f.Root == nil {
		return 0, validationf("empty formula")
	}
	if len(a) != len(f.Vars) {
		return 0, &ArityError{Want: len(f.Vars), Got: len(a)}
	}

	env := make(map[string]Bit, len(a))
	for i, b := range a {
		if b > 1 {
			return 0, validationf("truth value %d for %q is not 0 or 1", b, f.Vars[i])
		}
		env[f.Vars[i]] = b
	}

	return Visit[Bit](f.Root, evaluator{env: env}), nil
}

// Eval is shorthand for Evaluate(f, a).
func (f *Formula) Eval(a Assignment) (Bit, error) {
	return Evaluate(f, a)
}

// EvalMap evaluates f binding variables by name. Every variable of f must
// be present in values.
func (f *Formula) EvalMap(values map[string]bool) (bool, error) {
	if f == nil {
		return false, validationf("empty formula")
	}

	a := make(Assignment, 0, len(f.Vars))
	for _, name := range f.Vars {
		v, ok := values[name]
		if !ok {
			return false, fmt.Errorf("%w: no value for %q", ErrArity, name)
		}
		a = append(a, BitOf(v))
	}

	b, err := Evaluate(f, a)
	return b == 1, err
}

// evaluator walks the AST with a fixed variable binding.
type evaluator struct {
	env map[string]Bit // Value of each variable
}

// VisitVariable implements Visitor.
func (e evaluator) VisitVariable(v *Variable) Bit {
	b, ok := e.env[v.Name]
	if !ok {
		panic(fmt.Sprintf("truthtable: variable %q is not bound", v.Name))
	}

	return b
}

// VisitNot implements Visitor.
func (e evaluator) VisitNot(n *Not) Bit {
	return not(Visit[Bit](n.Operand, e))
}

// VisitBinary implements Visitor.
func (e evaluator) VisitBinary(b *Binary) Bit {
	left := Visit[Bit](b.Left, e)
	right := Visit[Bit](b.Right, e)

	switch b.Op {
	case OpOr:
		return left | right
	case OpAnd:
		return left & right
	case OpXor:
		return left ^ right
	case OpImplies:
		return not(left) | right
	case OpIff:
		return not(left ^ right)
	default:
		panic(fmt.Sprintf("truthtable: unexpected binary operator %s", b.Op))
	}
}

// VisitGroup implements Visitor.
func (e evaluator) VisitGroup(g *Group) Bit {
	return Visit[Bit](g.Inner, e)
}

// not flips a bit.
func not(b Bit) Bit {
	return b ^ 1
}
