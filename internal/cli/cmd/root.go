// Package cmd provides Cobra CLI commands for zoomlevels.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/zoomlevels/internal/cli"
	"github.com/bnema/zoomlevels/internal/domain/build"
)

var errAppNotInitialized = errors.New("app not initialized")

var (
	app       *cli.App
	buildInfo build.Info
	rootOpts  cli.Options
	rootCmd   = &cobra.Command{
		Use:   "zoomlevels",
		Short: "Restrict viewport zoom to a discrete set of levels",
		Long: `zoomlevels snaps every zoom change of a deep-zoom viewport to the nearest
permitted level in the direction of travel.

Levels are image-space factors: 1 shows one image pixel per screen pixel,
0.5 shows the image at half size. They come from the [zoom] section of the
config file, or from a named profile stored in the local database.

The commands run against a simulated viewport configured in [viewport],
so snapping decisions can be checked, replayed and explored interactively.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(rootOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			closeApp()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootOpts.ConfigFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/zoomlevels/config.toml)")
	rootCmd.PersistentFlags().StringVar(&rootOpts.LogLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error, disabled)")
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	// PersistentPostRun is skipped when RunE fails.
	closeApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func closeApp() {
	if app != nil {
		_ = app.Close()
		app = nil
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() (*cli.App, error) {
	if app == nil {
		return nil, errAppNotInitialized
	}
	return app, nil
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
