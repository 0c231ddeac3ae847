package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewLogsCommand creates the 'logs' subcommand, which prints the same
// payload as GET /api/logs.
func NewLogsCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "Print the access log, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newApp(version, processStart).accessLogs.Logs(cmd.Context())
			if err != nil {
				return fmt.Errorf("load logs: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}

// NewStatsCommand creates the 'stats' subcommand, which prints the same
// payload as GET /api/stats.
func NewStatsCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print access statistics for the recorded day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newApp(version, processStart).accessLogs.Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("load stats: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
