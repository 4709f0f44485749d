package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woozymasta/truthtable"
)

// newEvalCmd builds the eval command.
func newEvalCmd(a *app) *cobra.Command {
	var (
		set  []string
		bits string
	)

	c := &cobra.Command{
		Use:   "eval FORMULA",
		Short: "Evaluate a formula under one assignment",
		Example: `  truthtable eval --set A=1 --set B=0 'A->B'
  truthtable eval --bits 10 'A->B'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := formula(cmd, args)
			if err != nil {
				return err
			}

			f, err := truthtable.ParseString(text)
			if err != nil {
				return err
			}

			var value bool
			if cmd.Flags().Changed("bits") {
				assignment, err := parseBits(bits)
				if err != nil {
					return err
				}
				b, err := f.Eval(assignment)
				if err != nil {
					return err
				}
				value = b == 1
			} else {
				values, err := parseSet(set)
				if err != nil {
					return err
				}
				if value, err = f.EvalMap(values); err != nil {
					return err
				}
			}

			symbol := a.cfg.Table.Falsity
			if value {
				symbol = a.cfg.Table.Truth
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), symbol)
			return err
		},
	}

	c.Flags().StringArrayVarP(&set, "set", "s", nil, "variable value as NAME=VALUE (1, 0, true, false, T, F)")
	c.Flags().StringVarP(&bits, "bits", "b", "", "values in variable order as a string of 0 and 1")
	c.MarkFlagsMutuallyExclusive("set", "bits")

	return c
}

// parseBits converts "101" to an assignment.
func parseBits(s string) (truthtable.Assignment, error) {
	out := make(truthtable.Assignment, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			out = append(out, 0)
		case '1':
			out = append(out, 1)
		default:
			return nil, fmt.Errorf("%w: bit %d is %q, want 0 or 1", truthtable.ErrValidation, i+1, r)
		}
	}

	return out, nil
}

// parseSet converts NAME=VALUE pairs to a value map.
func parseSet(pairs []string) (map[string]bool, error) {
	out := make(map[string]bool, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: expected NAME=VALUE, got %q", truthtable.ErrValidation, pair)
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: value of %s: %q is not a truth value", truthtable.ErrValidation, name, raw)
		}
		out[strings.TrimSpace(name)] = v
	}

	return out, nil
}
