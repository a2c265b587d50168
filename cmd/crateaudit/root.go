// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"crateaudit-cli/internal/config"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
)

// newRootCommand builds the base command and its subcommand tree.
func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "crateaudit",
		Short: "Check crates.io for the latest versions of a crate list",
		Long: TitleStyle.Render("crateaudit") + SubtitleStyle.Render(" - crates.io version checker") + `

crateaudit queries the crates.io registry for the latest published
version of each crate in an audit list and prints the results as
indented JSON. Lookups run sequentially with a fixed pacing delay so
the registry is never hammered; per-crate failures are recorded in the
output instead of aborting the run.

` + SubtitleStyle.Render("Examples:") + `
  crateaudit check                          Audit the built-in crate list
  crateaudit check --manifest Cargo.toml    Audit a project's dependencies
  crateaudit crate tokio                    Inspect a single crate
  crateaudit config show                    Show current configuration`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			applyConfigDefaults(app)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/crateaudit/config.cue)")

	rootCmd.AddCommand(newCheckCommand(app))
	rootCmd.AddCommand(newCrateCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})

	// Use fang.Execute for enhanced Cobra styling.
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version.
	if err := fang.Execute(
		context.Background(),
		newRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// applyConfigDefaults lifts settings from the config file into flag defaults
// before a command runs. Config load failures are surfaced as a warning here
// and again as hard errors by commands that actually need the config.
func applyConfigDefaults(app *App) {
	cfg, err := app.Config.Load(context.Background(), loadOptions())
	if err != nil {
		fmt.Fprintln(app.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
}

// loadOptions translates the --config flag into provider load options.
func loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: cfgFile}
}
