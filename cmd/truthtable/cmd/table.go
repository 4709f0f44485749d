package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woozymasta/truthtable"
	"github.com/woozymasta/truthtable/internal/pretty"
)

// newTableCmd builds the table command. Flags override the config.
func newTableCmd(a *app) *cobra.Command {
	var (
		symbols  []string
		format   string
		workers  int
		out      string
		noHeader bool
		ascii    bool
	)

	c := &cobra.Command{
		Use:   "table FORMULA",
		Short: "Print the truth table of a formula",
		Example: `  truthtable table 'A<->!B'
  truthtable table --symbols 1,0 --format markdown 'A->(B|C)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := formula(cmd, args)
			if err != nil {
				return err
			}

			opt := a.cfg.TableOptions()
			if cmd.Flags().Changed("symbols") {
				opt.Symbols = symbols
			}
			if cmd.Flags().Changed("workers") {
				opt.Workers = workers
			}
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Table.Format
			}

			t, err := truthtable.New(text, opt)
			if err != nil {
				return err
			}
			a.logger.Debug("table built", "vars", len(t.Vars()), "rows", t.Len(), "workers", opt.Workers)

			if strings.EqualFold(format, "pretty") {
				rendered := pretty.Table(t, pretty.Options{ASCII: ascii, NoColor: a.noColor || out != ""}) + "\n"
				if out != "" {
					return os.WriteFile(out, []byte(rendered), 0o600)
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
				return err
			}

			f, err := truthtable.ParseFormat(format)
			if err != nil {
				return err
			}
			fopt := &truthtable.FormatOptions{Format: f, DisableHeader: noHeader}
			if out != "" {
				return truthtable.EncodeFile(out, t, fopt)
			}

			return truthtable.Encode(cmd.OutOrStdout(), t, fopt)
		},
	}

	c.Flags().StringSliceVar(&symbols, "symbols", nil, "truth and falsity symbols, e.g. 1,0")
	c.Flags().StringVarP(&format, "format", "f", "pretty", "output format: pretty, text, csv, markdown, json or yaml")
	c.Flags().IntVarP(&workers, "workers", "w", 1, "goroutines used to evaluate rows")
	c.Flags().StringVarP(&out, "out", "o", "", "write output to file")
	c.Flags().BoolVar(&noHeader, "no-header", false, "omit the header row (text, csv, markdown)")
	c.Flags().BoolVar(&ascii, "ascii", false, "draw pretty borders with ASCII characters")

	return c
}
