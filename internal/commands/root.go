package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree.  Run without a subcommand it
// behaves like "serve".
func NewRootCommand(version string) *cobra.Command {
	serve := NewServeCommand(version)

	root := &cobra.Command{
		Use:   "fingerlock-server",
		Short: "Demo API for an IoT fingerprint door lock",
		Long: `fingerlock-server exposes canned status and access-log data for a
fingerprint door lock that went offline on 10 Nov 2025.

With no subcommand it starts the HTTP server, listening on $PORT (default 3000).
A .env file in the working directory is read before the environment.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve)
	root.AddCommand(NewLogsCommand(version))
	root.AddCommand(NewStatsCommand(version))
	root.AddCommand(NewVersionCommand(version))

	return root
}
