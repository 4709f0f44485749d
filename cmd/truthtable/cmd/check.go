package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woozymasta/truthtable"
	"github.com/woozymasta/truthtable/internal/pretty"
)

// errIssues reports that check found error level issues.
var errIssues = errors.New("check found errors")

// newCheckCmd builds the check command.
func newCheckCmd(a *app) *cobra.Command {
	var opt truthtable.CheckOptions

	c := &cobra.Command{
		Use:   "check FORMULA",
		Short: "Report redundant parentheses, double negations and similar issues",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := formula(cmd, args)
			if err != nil {
				return err
			}

			f, err := truthtable.ParseString(text)
			if err != nil {
				return err
			}

			issues := truthtable.Check(f, &opt)
			issues = append(issues, truthtable.CheckSymbols(a.cfg.TableOptions())...)
			if len(issues) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), pretty.Issues(issues, pretty.Options{NoColor: a.noColor}))
			for _, is := range issues {
				if is.Level == truthtable.IssueError {
					return errIssues
				}
			}

			return nil
		},
	}

	c.Flags().BoolVar(&opt.DisableGroupingCheck, "no-grouping", false, "skip redundant parentheses checks")
	c.Flags().BoolVar(&opt.DisableNegationCheck, "no-negation", false, "skip double negation checks")
	c.Flags().BoolVar(&opt.DisableOperandCheck, "no-operands", false, "skip identical operand checks")

	return c
}
