package truthtable

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the serialized shape of a Table.
type Document struct {
	Formula string     `json:"formula" yaml:"formula"` // Formula text
	Vars    []string   `json:"vars" yaml:"vars"`       // Variables in column order
	Truth   string     `json:"truth" yaml:"truth"`     // Symbol for true cells
	Falsity string     `json:"falsity" yaml:"falsity"` // Symbol for false cells
	Header  []string   `json:"header" yaml:"header"`   // Header row
	Rows    [][]string `json:"rows" yaml:"rows"`       // Assignment rows
}

// Document returns the serializable form of t.
func (t *Table) Document() Document {
	return Document{
		Formula: t.formula,
		Vars:    append([]string{}, t.parsed.Vars...),
		Truth:   t.truth,
		Falsity: t.falsity,
		Header:  t.Header(),
		Rows:    t.Body(),
	}
}

// Encode writes a Table to writer.
func Encode(w io.Writer, t *Table, opt *FormatOptions) error {
	fopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, opt: fopt}
	if err := wr.writeTable(t); err != nil {
		return err
	}

	return bw.Flush()
}

// EncodeFile writes a Table to a file.
func EncodeFile(path string, t *Table, opt *FormatOptions) error {
	b, err := Format(t, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// Format renders a Table to bytes.
func Format(t *Table, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, t, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writer writes a Table in one of the supported formats.
type writer struct {
	w   *bufio.Writer // Writer to write to
	opt FormatOptions // Normalized options
}

// writeTable dispatches on the configured format.
func (w *writer) writeTable(t *Table) error {
	switch w.opt.Format {
	case FormatText:
		return w.writeText(w.rows(t))
	case FormatCSV:
		cw := csv.NewWriter(w.w)
		if err := cw.WriteAll(w.rows(t)); err != nil {
			return err
		}
		return cw.Error()
	case FormatMarkdown:
		return w.writeMarkdown(t)
	case FormatJSON:
		enc := json.NewEncoder(w.w)
		enc.SetIndent("", w.opt.Indent)
		return enc.Encode(t.Document())
	case FormatYAML:
		enc := yaml.NewEncoder(w.w)
		enc.SetIndent(len(w.opt.Indent))
		if err := enc.Encode(t.Document()); err != nil {
			return err
		}
		return enc.Close()
	default:
		return validationf("unknown format %q", w.opt.Format)
	}
}

// rows returns the rows to print, honoring DisableHeader.
func (w *writer) rows(t *Table) [][]string {
	if w.opt.DisableHeader {
		return t.Body()
	}

	return t.Rows()
}

// writeText writes each cell followed by a space, one row per line.
func (w *writer) writeText(rows [][]string) error {
	for _, row := range rows {
		for _, cell := range row {
			if err := w.writeString(cell + " "); err != nil {
				return err
			}
		}
		if err := w.w.WriteByte('\n'); err != nil {
			return err
		}
	}

	return nil
}

// writeMarkdown writes a pipe table. The header row is always emitted
// since markdown tables require one; DisableHeader blanks its cells.
func (w *writer) writeMarkdown(t *Table) error {
	header := t.Header()
	if w.opt.DisableHeader {
		header = make([]string, len(header))
	}

	if err := w.writeMarkdownRow(header); err != nil {
		return err
	}

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = ":---:"
	}
	if err := w.writeMarkdownRow(sep); err != nil {
		return err
	}

	for _, row := range t.Body() {
		if err := w.writeMarkdownRow(row); err != nil {
			return err
		}
	}

	return nil
}

// writeMarkdownRow writes a single pipe-delimited row.
func (w *writer) writeMarkdownRow(cells []string) error {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		// Formulas may contain '|', which would split the cell.
		escaped[i] = strings.ReplaceAll(c, "|", `\|`)
	}

	return w.writeString("| " + strings.Join(escaped, " | ") + " |\n")
}

// writeString writes s to the writer.
func (w *writer) writeString(s string) error {
	_, err := w.w.WriteString(s)
	return err
}
