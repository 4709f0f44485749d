package truthtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTable(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		opt     *CheckOptions
		want    []Issue
	}{
		{
			name:    "clean",
			formula: "A->(B|C)",
		},
		{
			name:    "double_negation",
			formula: "!!A&B",
			want: []Issue{
				{Level: IssueWarning, Code: CodeDoubleNegation, Message: "double negation", Path: "!!A"},
			},
		},
		{
			name:    "grouping_around_variable",
			formula: "(A)|B",
			want: []Issue{
				{Level: IssueWarning, Code: CodeRedundantGrouping, Message: "parentheses around a single operand", Path: "(A)"},
			},
		},
		{
			name:    "whole_formula_grouped",
			formula: "(A|B)",
			want: []Issue{
				{Level: IssueWarning, Code: CodeRedundantGrouping, Message: "whole formula is parenthesized", Path: "(A | B)"},
			},
		},
		{
			name:    "identical_operands",
			formula: "(A&B)^(A&B)",
			want: []Issue{
				{Level: IssueWarning, Code: CodeIdenticalOperands, Message: "operands of '^' are identical", Path: "(A & B) ^ (A & B)"},
			},
		},
		{
			name:    "disabled",
			formula: "(!!A)|(!!A)",
			opt: &CheckOptions{
				DisableGroupingCheck: true,
				DisableNegationCheck: true,
				DisableOperandCheck:  true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseString(tt.formula)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Check(f, tt.opt))
		})
	}
}

func TestCheckEmptyFormula(t *testing.T) {
	issues := Check(&Formula{}, nil)
	require.Len(t, issues, 1)
	assert.Equal(t, IssueError, issues[0].Level)
	assert.Equal(t, CodeEmptyFormula, issues[0].Code)
}

func TestCheckSymbols(t *testing.T) {
	assert.Empty(t, CheckSymbols(nil))
	assert.Empty(t, CheckSymbols(&TableOptions{Symbols: []string{"1", "0"}}))

	issues := CheckSymbols(&TableOptions{Symbols: []string{"x", "x"}})
	require.Len(t, issues, 1)
	assert.Equal(t, CodeEqualSymbols, issues[0].Code)

	issues = CheckSymbols(&TableOptions{Symbols: []string{"x"}})
	require.Len(t, issues, 1)
	assert.Equal(t, IssueError, issues[0].Level)
	assert.Equal(t, CodeInvalidSymbols, issues[0].Code)

	// Only the symbol pair is inspected.
	assert.Empty(t, CheckSymbols(&TableOptions{MaxVariables: MaxVariablesLimit + 1}))
}
