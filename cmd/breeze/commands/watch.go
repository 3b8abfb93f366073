package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/breeze/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Build every configured stylesheet and rebuild on changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("metrics-addr")
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				BuildOptions: buildOptions(cmd),
				MetricsAddr:  addr,
			})
		},
	}
	addBuildFlags(cmd)
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	return cmd
}
