package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/breeze/internal/build"
	"go.trai.ch/breeze/internal/ui/style"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmdo := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(cmdo, "%s version %s (commit: %s, date: %s)\n",
				style.Bold("breeze"), build.Version, build.Commit, build.Date)
		},
	}
}
