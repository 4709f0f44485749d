package cmd

import (
	"github.com/spf13/cobra"

	"github.com/woozymasta/truthtable/internal/server"
)

// newServeCmd builds the serve command. --port overrides the config.
func newServeCmd(a *app) *cobra.Command {
	var port string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}

			return server.New(a.cfg, a.logger).Start(cmd.Context())
		},
	}

	c.Flags().StringVarP(&port, "port", "p", "", "listen port (default from config)")

	return c
}
