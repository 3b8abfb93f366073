// Package commands implements the CLI commands for the breeze stylesheet builder.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/breeze/internal/app"
	"go.trai.ch/breeze/internal/build"
)

// CLI represents the command line interface for breeze.
type CLI struct {
	app     Application
	logger  Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// Logger is the part of the logger the global flags configure.
type Logger interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application, log Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "breeze",
		Short:         "An incremental utility-first CSS builder",
		Long:          "breeze compiles stylesheets using utility directives, generating only the classes found in your content files.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug output")
	rootCmd.PersistentFlags().Bool("json", false, "Log as JSON")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.logger == nil {
			return
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonMode, _ := cmd.Flags().GetBool("json")
		c.logger.SetVerbose(verbose)
		c.logger.SetJSON(jsonMode)
	}

	// Without a subcommand breeze builds, or watches with --watch.
	addBuildFlags(rootCmd)
	rootCmd.Flags().BoolP("watch", "w", false, "Rebuild when files change")
	rootCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address while watching")
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		opts := buildOptions(cmd)
		if watch, _ := cmd.Flags().GetBool("watch"); watch {
			addr, _ := cmd.Flags().GetString("metrics-addr")
			return c.app.Watch(cmd.Context(), app.WatchOptions{BuildOptions: opts, MetricsAddr: addr})
		}
		return c.app.Build(cmd.Context(), opts)
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
