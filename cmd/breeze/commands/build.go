package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/breeze/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build every configured stylesheet once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Build(cmd.Context(), buildOptions(cmd))
		},
	}
	addBuildFlags(cmd)
	return cmd
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Input stylesheet, overrides the entries of breeze.yaml (\"-\" reads stdin)")
	cmd.Flags().StringP("output", "o", "", "Output file for --input (defaults to stdout)")
	cmd.Flags().String("base", "", "Root directory for automatic content detection")
	cmd.Flags().Bool("optimize", false, "Optimize the output")
	cmd.Flags().BoolP("minify", "m", false, "Optimize and minify the output")
	cmd.Flags().String("progress", "auto", "Progress output: auto, pretty, plain, or tui")
	cmd.Flags().String("cwd", "", "Directory to start looking for breeze.yaml")
}

// buildOptions reads the flags added by addBuildFlags. The optimization flags
// only override the configuration when they were set explicitly.
func buildOptions(cmd *cobra.Command) app.BuildOptions {
	flags := cmd.Flags()
	input, _ := flags.GetString("input")
	output, _ := flags.GetString("output")
	base, _ := flags.GetString("base")
	progress, _ := flags.GetString("progress")
	cwd, _ := flags.GetString("cwd")

	opts := app.BuildOptions{
		Cwd:      cwd,
		Input:    input,
		Output:   output,
		Base:     base,
		Progress: progress,
	}
	if flags.Changed("optimize") {
		optimize, _ := flags.GetBool("optimize")
		opts.Optimize = &optimize
	}
	if flags.Changed("minify") {
		minify, _ := flags.GetBool("minify")
		opts.Minify = &minify
	}
	return opts
}
