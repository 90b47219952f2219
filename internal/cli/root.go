package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // e.g. "v1.2.3", or "dev" when unstamped
	commit  string
	date    string
)

// SetVersion records the build stamp shown by --version. main calls it
// once with the ldflags-injected values before Execute.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs one colplot command and reports its error, if any.
//
// The passed context carries cancellation from signal handling in main
// and is visible to every command through cmd.Context():
//
//	func main() {
//	    cli.SetVersion("v1.0.0", "abc123", "2026-08-20")
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd assembles the root command with all subcommands (generate,
// render, demo, serve, cache, completion) and the persistent --verbose
// flag. PersistentPreRun attaches a stderr logger to the command context
// at info level, or debug level with --verbose, where loggerFromContext
// picks it up.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "colplot",
		Short:        "Colplot renders table columns as line and scatter figures",
		Long:         `Colplot is a CLI tool for plotting the columns of paired x/y tables as line and scatter figures, either on one shared surface or one surface per column.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmdCtx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(cmdCtx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("colplot %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newDemoCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root
}
