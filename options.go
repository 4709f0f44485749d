package truthtable

import "strings"

const (
	// DefaultTruthSymbol is the default symbol for a true cell.
	DefaultTruthSymbol = "T"
	// DefaultFalsitySymbol is the default symbol for a false cell.
	DefaultFalsitySymbol = "F"
	// DefaultMaxVariables caps the variable count of a table (2^24 rows).
	DefaultMaxVariables = 24
	// MaxVariablesLimit is the largest accepted MaxVariables (2^30 rows).
	MaxVariablesLimit = 30
)

// Encoding names a table encoding.
type Encoding string

// table encodings.
const (
	FormatText     Encoding = "text"     // Space separated cells, one row per line
	FormatCSV      Encoding = "csv"      // RFC 4180 comma separated values
	FormatMarkdown Encoding = "markdown" // GitHub flavored markdown table
	FormatJSON     Encoding = "json"     // JSON document
	FormatYAML     Encoding = "yaml"     // YAML document
)

// Formats lists every supported Encoding.
var Formats = []Encoding{FormatText, FormatCSV, FormatMarkdown, FormatJSON, FormatYAML}

// ParseFormat resolves a format name case-insensitively. "md" and "yml"
// are accepted as aliases.
func ParseFormat(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", validationf("unknown format %q", s)
	}
}

// TableOptions controls table construction.
type TableOptions struct {
	// Symbols holds the truth symbol then the falsity symbol.
	// Nil selects "T" and "F"; otherwise exactly two values are required.
	// Equal values are accepted.
	Symbols []string
	// MaxVariables rejects formulas with more distinct variables (default 24,
	// at most MaxVariablesLimit).
	MaxVariables int
	// Workers evaluates rows on that many goroutines when greater than 1.
	Workers int
}

// FormatOptions controls writer formatting.
type FormatOptions struct {
	// Format selects the encoding (default text).
	Format Encoding
	// Indent is the indentation for JSON and YAML output (default two spaces).
	Indent string
	// DisableHeader omits the header row in text, csv and markdown output.
	DisableHeader bool
}

// CheckOptions controls formula checks.
type CheckOptions struct {
	// DisableGroupingCheck disables redundant_grouping issues.
	DisableGroupingCheck bool
	// DisableNegationCheck disables double_negation issues.
	DisableNegationCheck bool
	// DisableOperandCheck disables identical_operands issues.
	DisableOperandCheck bool
}

// normalize validates and normalizes the TableOptions.
func (o *TableOptions) normalize() (TableOptions, error) {
	if o == nil {
		return TableOptions{
			Symbols:      []string{DefaultTruthSymbol, DefaultFalsitySymbol},
			MaxVariables: DefaultMaxVariables,
			Workers:      1,
		}, nil
	}

	out := *o
	if out.Symbols == nil {
		out.Symbols = []string{DefaultTruthSymbol, DefaultFalsitySymbol}
	} else if len(out.Symbols) != 2 {
		return TableOptions{}, validationf("symbols should have exactly 2 values, got %d", len(out.Symbols))
	}
	if out.MaxVariables <= 0 {
		out.MaxVariables = DefaultMaxVariables
	} else if out.MaxVariables > MaxVariablesLimit {
		return TableOptions{}, validationf("max variables should be at most %d, got %d", MaxVariablesLimit, out.MaxVariables)
	}
	if out.Workers < 1 {
		out.Workers = 1
	}

	return out, nil
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{Format: FormatText, Indent: "  "}
	}

	out := *o
	if out.Format == "" {
		out.Format = FormatText
	}
	if out.Indent == "" {
		out.Indent = "  "
	}

	return out
}

// normalize normalizes the CheckOptions.
func (o *CheckOptions) normalize() CheckOptions {
	if o == nil {
		return CheckOptions{}
	}

	return *o
}
