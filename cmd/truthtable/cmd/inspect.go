package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woozymasta/truthtable"
)

// newTokensCmd builds the tokens command.
func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FORMULA",
		Short: "Print the tokens of a formula, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := formula(cmd, args)
			if err != nil {
				return err
			}

			toks, err := truthtable.Tokenize(text)
			if err != nil {
				return err
			}
			a.logger.Debug("tokenized", "count", len(toks))

			out := cmd.OutOrStdout()
			for _, tok := range toks {
				fmt.Fprintf(out, "%d\t%s\n", tok.Col, tok)
			}

			return nil
		},
	}
}

// newASTCmd builds the ast command.
func newASTCmd(a *app) *cobra.Command {
	var infix bool

	c := &cobra.Command{
		Use:   "ast FORMULA",
		Short: "Print the syntax tree of a formula in prefix form",
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
			a.logger.Debug("parsed", "vars", f.Vars)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, truthtable.Render(f.Root))
			if infix {
				fmt.Fprintln(out, truthtable.Infix(f.Root))
			}
			fmt.Fprintf(out, "vars: %s\n", strings.Join(f.Vars, " "))

			return nil
		},
	}

	c.Flags().BoolVar(&infix, "infix", false, "also print the formula in normalized infix form")

	return c
}
