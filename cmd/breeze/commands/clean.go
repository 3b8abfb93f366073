package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/breeze/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the build info store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, _ := cmd.Flags().GetString("cwd")
			return c.app.Clean(cmd.Context(), app.CleanOptions{Cwd: cwd})
		},
	}
	cmd.Flags().String("cwd", "", "Directory to start looking for breeze.yaml")
	return cmd
}
