package truthtable

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFormatText(t *testing.T) {
	out, err := Format(MustNew("!A", nil), nil)
	require.NoError(t, err)
	assert.Equal(t, "A !A \nF T \nT F \n", string(out))

	out, err = Format(MustNew("!A", nil), &FormatOptions{DisableHeader: true})
	require.NoError(t, err)
	assert.Equal(t, "F T \nT F \n", string(out))
}

func TestFormatCSV(t *testing.T) {
	out, err := Format(MustNew("A|B", &TableOptions{Symbols: []string{"1", "0"}}), &FormatOptions{Format: FormatCSV})
	require.NoError(t, err)
	assert.Equal(t, "A,B,A|B\n0,0,0\n0,1,1\n1,0,1\n1,1,1\n", string(out))
}

func TestFormatMarkdown(t *testing.T) {
	out, err := Format(MustNew("A|B", nil), &FormatOptions{Format: FormatMarkdown})
	require.NoError(t, err)

	want := "| A | B | A\\|B |\n" +
		"| :---: | :---: | :---: |\n" +
		"| F | F | F |\n" +
		"| F | T | T |\n" +
		"| T | F | T |\n" +
		"| T | T | T |\n"
	assert.Equal(t, want, string(out))
}

func TestFormatJSONAndYAML(t *testing.T) {
	tbl := MustNew("A->B", nil)
	want := tbl.Document()

	out, err := Format(tbl, &FormatOptions{Format: FormatJSON})
	require.NoError(t, err)
	var fromJSON Document
	require.NoError(t, json.Unmarshal(out, &fromJSON))
	assert.Equal(t, want, fromJSON)

	out, err = Format(tbl, &FormatOptions{Format: FormatYAML})
	require.NoError(t, err)
	var fromYAML Document
	require.NoError(t, yaml.Unmarshal(out, &fromYAML))
	assert.Equal(t, want, fromYAML)
	assert.Contains(t, string(out), "formula: A->B")
}

func TestFormatUnknown(t *testing.T) {
	_, err := Format(MustNew("A", nil), &FormatOptions{Format: "xml"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Encoding{
		"":         FormatText,
		"TEXT":     FormatText,
		"csv":      FormatCSV,
		"md":       FormatMarkdown,
		"markdown": FormatMarkdown,
		"json":     FormatJSON,
		"yml":      FormatYAML,
		" yaml ":   FormatYAML,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("html")
	require.ErrorIs(t, err, ErrValidation)
}

func TestEncodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, EncodeFile(path, MustNew("X", nil), &FormatOptions{Format: FormatCSV}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "X,X\nF,F\nT,T\n", string(b))
}
