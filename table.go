package truthtable

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Table is the truth table of a formula. The matrix is built on first
// read and cached; a Table is safe for concurrent use.
type Table struct {
	formula string   // Formula text, verbatim
	truth   string   // Symbol for true cells
	falsity string   // Symbol for false cells
	parsed  *Formula // Parsed formula
	workers int      // Goroutines used to evaluate rows

	once    sync.Once  // Guards rows and results
	rows    [][]string // Header then one row per assignment
	results []Bit      // Evaluated value per assignment
}

// New parses formula and prepares its truth table. Blank text, a symbol
// pair that is not exactly two values and too many variables fail with
// ErrValidation; lexer and parser failures are returned as is.
func New(formula string, opt *TableOptions) (*Table, error) {
	topt, err := opt.normalize()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(formula) == "" {
		return nil, validationf("formula should not be empty or blank")
	}

	f, err := ParseString(formula)
	if err != nil {
		return nil, err
	}
	if len(f.Vars) > topt.MaxVariables {
		return nil, validationf("formula has %d variables, limit is %d", len(f.Vars), topt.MaxVariables)
	}

	return &Table{
		formula: formula,
		truth:   topt.Symbols[0],
		falsity: topt.Symbols[1],
		parsed:  f,
		workers: topt.Workers,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(formula string, opt *TableOptions) *Table {
	t, err := New(formula, opt)
	if err != nil {
		panic(err)
	}

	return t
}

// Rows returns the header row followed by 2^n assignment rows.
func (t *Table) Rows() [][]string {
	t.once.Do(t.generate)
	return t.rows
}

// Header returns the variable names followed by the formula text.
func (t *Table) Header() []string {
	return t.Rows()[0]
}

// Body returns the assignment rows without the header.
func (t *Table) Body() [][]string {
	return t.Rows()[1:]
}

// Results returns the evaluated value of each assignment, in row order.
func (t *Table) Results() []Bit {
	t.once.Do(t.generate)
	return t.results
}

// Cell returns the bit shown in column col of assignment row k (0-based,
// header excluded). The last column holds the evaluated result.
func (t *Table) Cell(k, col int) Bit {
	n := len(t.parsed.Vars)
	if col == n {
		return t.Results()[k]
	}

	return assignmentBit(k, col, n)
}

// Len returns the number of assignment rows, 2^n.
func (t *Table) Len() int {
	return 1 << len(t.parsed.Vars)
}

// Text returns the formula text.
func (t *Table) Text() string { return t.formula }

// Formula returns the parsed formula.
func (t *Table) Formula() *Formula { return t.parsed }

// Expr returns the root of the parsed formula.
func (t *Table) Expr() Expr { return t.parsed.Root }

// Vars returns the variables in column order.
func (t *Table) Vars() VariableOrder { return t.parsed.Vars }

// Symbols returns the truth and falsity symbols.
func (t *Table) Symbols() (truth, falsity string) { return t.truth, t.falsity }

// symbol maps a bit to its display symbol.
func (t *Table) symbol(b Bit) string {
	if b == 1 {
		return t.truth
	}

	return t.falsity
}

// generate fills rows and results.
func (t *Table) generate() {
	n := len(t.parsed.Vars)
	count := t.Len()

	rows := make([][]string, count+1)
	header := make([]string, 0, n+1)
	header = append(header, t.parsed.Vars...)
	rows[0] = append(header, t.formula)
	results := make([]Bit, count)

	// fill evaluates assignments lo..hi-1; ranges never overlap.
	fill := func(lo, hi int) error {
		bits := make(Assignment, n)
		for k := lo; k < hi; k++ {
			row := make([]string, n+1)
			for i := 0; i < n; i++ {
				bits[i] = assignmentBit(k, i, n)
				row[i] = t.symbol(bits[i])
			}

			b, err := Evaluate(t.parsed, bits)
			if err != nil {
				return fmt.Errorf("row %d: %w", k+1, err)
			}
			row[n] = t.symbol(b)
			rows[k+1] = row
			results[k] = b
		}

		return nil
	}

	var err error
	if t.workers <= 1 || count < t.workers {
		err = fill(0, count)
	} else {
		var g errgroup.Group
		g.SetLimit(t.workers)
		chunk := (count + t.workers - 1) / t.workers
		for lo := 0; lo < count; lo += chunk {
			hi := min(lo+chunk, count)
			g.Go(func() error { return fill(lo, hi) })
		}
		err = g.Wait()
	}
	if err != nil {
		// Assignment length always equals len(Vars) here.
		panic(err)
	}

	t.rows = rows
	t.results = results
}

// assignmentBit returns the value of variable i in assignment k of n
// variables. The first variable is the most significant bit.
func assignmentBit(k, i, n int) Bit {
	return Bit((k >> (n - 1 - i)) & 1)
}
