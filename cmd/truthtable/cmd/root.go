// Package cmd implements the truthtable command line interface.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woozymasta/truthtable/internal/config"
	"github.com/woozymasta/truthtable/internal/logging"
	"github.com/woozymasta/truthtable/internal/pretty"
)

// app carries state shared by subcommands after the root pre-run.
type app struct {
	cfgFile string
	envFile string
	verbose bool
	noColor bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "truthtable",
		Short: "Propositional logic truth tables",
		Long: `truthtable lexes, parses and evaluates propositional logic formulas
and prints their truth tables.

Variables are runs of letters, digits and underscores. Connectives:
  !    not
  &    and
  |    or
  ^    xor
  ->   implies
  <->  iff

All binary connectives share one precedence and associate to the left.
Pass "-" as the formula to read it from standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "dotenv file (default: .env)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newTableCmd(a),
		newTokensCmd(a),
		newASTCmd(a),
		newEvalCmd(a),
		newCheckCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the CLI and reports errors on stderr.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, pretty.Error(err, pretty.Options{}))
		return err
	}

	return nil
}

// setup loads configuration and installs the logger.
func (a *app) setup(logOut io.Writer) error {
	cfg, err := config.Load(a.cfgFile, a.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.Setup(cfg.Log, logOut, a.verbose)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	logger.Debug("configuration loaded", "file", a.cfgFile, "format", cfg.Table.Format, "workers", cfg.Table.Workers)
	return nil
}

// formula joins the positional arguments, or reads stdin when the only
// argument is "-". Spaces are insignificant to the lexer, so unquoted
// formulas split by the shell still work.
func formula(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read formula: %w", err)
		}
		return strings.TrimRight(string(b), "\r\n"), nil
	}

	return strings.Join(args, " "), nil
}
