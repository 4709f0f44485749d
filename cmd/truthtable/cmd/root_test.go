package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/truthtable"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestTableText(t *testing.T) {
	out, err := run(t, "", "table", "--format", "text", "--symbols", "1,0", "A<->!B")
	require.NoError(t, err)
	assert.Equal(t, "A B A<->!B \n0 0 0 \n0 1 1 \n1 0 1 \n1 1 0 \n", out)
}

func TestTableJoinsArgs(t *testing.T) {
	out, err := run(t, "", "table", "-f", "csv", "--no-header", "A", "->", "B")
	require.NoError(t, err)
	assert.Equal(t, "F,F,T\nF,T,T\nT,F,F\nT,T,T\n", out)
}

func TestTableStdin(t *testing.T) {
	out, err := run(t, "!A\n", "table", "-f", "text", "-")
	require.NoError(t, err)
	assert.Equal(t, "A !A \nF T \nT F \n", out)
}

func TestTablePretty(t *testing.T) {
	out, err := run(t, "", "--no-color", "table", "--ascii", "A&B")
	require.NoError(t, err)
	assert.Contains(t, out, "A&B")
	assert.Equal(t, 8, strings.Count(out, "\n"))
}

func TestTableParallel(t *testing.T) {
	seq, err := run(t, "", "table", "-f", "csv", "A^B->C|D&E")
	require.NoError(t, err)
	par, err := run(t, "", "table", "-f", "csv", "-w", "4", "A^B->C|D&E")
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestTableOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.md")
	out, err := run(t, "", "table", "-f", "markdown", "-o", path, "A")
	require.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "| A | A |\n| :---: | :---: |\n| F | F |\n| T | T |\n", string(b))
}

func TestTableConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truthtable.toml")
	require.NoError(t, os.WriteFile(path, []byte("[table]\ntruth = \"1\"\nfalsity = \"0\"\nformat = \"csv\"\n"), 0o600))

	out, err := run(t, "", "--config", path, "table", "!A")
	require.NoError(t, err)
	assert.Equal(t, "A,!A\n0,1\n1,0\n", out)
}

func TestTokens(t *testing.T) {
	out, err := run(t, "", "tokens", "A->B")
	require.NoError(t, err)
	assert.Equal(t, "1\tVariable(A)\n2\tConnective(implies)\n4\tVariable(B)\n5\tEOF\n", out)
}

func TestAST(t *testing.T) {
	out, err := run(t, "", "ast", "--infix", "!A->(B|C)")
	require.NoError(t, err)
	assert.Equal(t, "(implies (not A) (grouping (or B C)))\n!A -> (B | C)\nvars: A B C\n", out)
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"set", []string{"eval", "--set", "A=1", "--set", "B=0", "A->B"}, "F\n"},
		{"set words", []string{"eval", "-s", "A=true", "-s", "B=true", "A->B"}, "T\n"},
		{"bits", []string{"eval", "--bits", "01", "A->B"}, "T\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCheck(t *testing.T) {
	out, err := run(t, "", "--no-color", "check", "!!A")
	require.NoError(t, err)
	assert.Contains(t, out, "double_negation")

	out, err = run(t, "", "check", "A&B")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	out, err = run(t, "", "check", "--no-negation", "!!A")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "truthtable v"+Version+"\n"))
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"lex", []string{"table", "A ? B"}, truthtable.ErrLex},
		{"parse", []string{"ast", "A->)"}, truthtable.ErrParse},
		{"symbols", []string{"table", "--symbols", "1", "A"}, truthtable.ErrValidation},
		{"format", []string{"table", "-f", "xml", "A"}, truthtable.ErrValidation},
		{"arity", []string{"eval", "--bits", "1", "A&B"}, truthtable.ErrArity},
		{"missing value", []string{"eval", "--set", "A=1", "A&B"}, truthtable.ErrArity},
		{"bad bit", []string{"eval", "--bits", "12", "A&B"}, truthtable.ErrValidation},
		{"bad pair", []string{"eval", "--set", "A", "A"}, truthtable.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConfigError(t *testing.T) {
	_, err := run(t, "", "--config", filepath.Join(t.TempDir(), "truthtable.ini"), "table", "A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
