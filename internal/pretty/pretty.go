// Package pretty renders truth tables and diagnostics for terminals.
package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/woozymasta/truthtable"
)

// Options controls terminal rendering.
type Options struct {
	// ASCII draws the border with plain ASCII characters.
	ASCII bool
	// NoColor renders without foreground colors.
	NoColor bool
}

// Table renders t as a bordered table with true and false cells colored.
// The result column is bold.
func Table(t *truthtable.Table, opt Options) string {
	border := lipgloss.RoundedBorder()
	if opt.ASCII {
		border = lipgloss.ASCIIBorder()
	}

	tbl := table.New().
		Border(border).
		BorderStyle(BorderStyle).
		Headers(t.Header()...).
		Rows(t.Body()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle(t, row, col, opt)
		})

	return tbl.Render()
}

// cellStyle picks the style of a cell from its bit, not its symbol, so
// equal truth and falsity symbols still color correctly.
func cellStyle(t *truthtable.Table, row, col int, opt Options) lipgloss.Style {
	if row == table.HeaderRow {
		return HeaderStyle
	}

	style := FalseStyle
	if t.Cell(row, col) == 1 {
		style = TrueStyle
	}
	if opt.NoColor {
		style = CellStyle
	}
	if col == len(t.Vars()) {
		style = style.Bold(true)
	}

	return style
}

// Issues renders check issues one per line.
func Issues(issues []truthtable.Issue, opt Options) string {
	var b strings.Builder
	for _, is := range issues {
		level := string(is.Level)
		if !opt.NoColor {
			if is.Level == truthtable.IssueError {
				level = ErrorStyle.Render(level)
			} else {
				level = WarningStyle.Render(level)
			}
		}

		fmt.Fprintf(&b, "%s [%s] %s", level, is.Code, is.Message)
		if is.Path != "" {
			fmt.Fprintf(&b, ": %s", is.Path)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Error renders an error message.
func Error(err error, opt Options) string {
	if opt.NoColor {
		return "error: " + err.Error()
	}

	return ErrorStyle.Render("error:") + " " + err.Error()
}
