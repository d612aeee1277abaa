// Package cmd provides Cobra CLI commands for dockyard.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/domain/build"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "dockyard",
		Short: "A dockable panel layout engine for the terminal",
		Long: `Dockyard - dockable, tabbed and resizable panels in your terminal.

Panels live in a binary split tree. Drag a header to move a panel, drag a
tab onto another header to group it, drop near a side to split, or near the
screen border to snap. Dividers and corners resize with the mouse, pushing
neighbours out of the way when a panel reaches its minimum size.

Running dockyard without a subcommand opens the interactive dock. The
layout subcommands manage saved setups without a terminal UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", cobra.ShellCompRequestCmd:
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile: configFile,
				LogToFile:  isInteractive(cmd),
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			logging.FromContext(app.Ctx()).Debug().
				Str("build", buildInfo.String()).
				Str("command", cmd.CommandPath()).
				Msg("starting")
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			closeApp()
		},
		RunE: withApp(runDemo),
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/dockyard/config.toml)")
}

// isInteractive reports whether cmd takes over the terminal, in which case
// logs must not go to stderr.
func isInteractive(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == demoCmdName
}

func closeApp() {
	if app != nil {
		_ = app.Close()
		app = nil
	}
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	closeApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withApp hands the App built by PersistentPreRunE to a command body.
func withApp(run func(cmd *cobra.Command, args []string, a *cli.App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if app == nil {
			return errors.New("app not initialized")
		}
		return run(cmd, args, app)
	}
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
