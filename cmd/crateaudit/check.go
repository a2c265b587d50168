// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"time"

	"crateaudit-cli/internal/audit"
	"crateaudit-cli/internal/issue"
	"crateaudit-cli/internal/manifest"
	"crateaudit-cli/internal/registry"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newCheckCommand creates the `crateaudit check` command.
func newCheckCommand(app *App) *cobra.Command {
	var (
		manifestPath   string
		pacingOverride time.Duration
	)

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Audit the crate list against the registry",
		Long: `Audit the crate list against the registry.

Each crate in the list is looked up on crates.io, one request at a time
with a pacing delay in between. The result is a JSON object on stdout
mapping every crate name to its latest version, or to an error
description when the lookup failed. Failures never abort the run and do
not affect the exit status.

The crate list comes from, in order of precedence:
  1. --manifest <Cargo.toml>  the manifest's dependency tables
  2. the 'crates' list in the config file
  3. the built-in audit list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), app, manifestPath, pacingOverride)
		},
	}

	checkCmd.Flags().StringVar(&manifestPath, "manifest", "", "read the crate list from a Cargo.toml")
	checkCmd.Flags().DurationVar(&pacingOverride, "pacing", 0, "override the delay between registry lookups (e.g. 250ms)")

	return checkCmd
}

// runCheck performs the full audit run: resolve the crate list, walk it
// sequentially through the registry client, and write the JSON report to
// stdout. Progress and diagnostics go to stderr so stdout stays pure JSON.
func runCheck(ctx context.Context, app *App, manifestPath string, pacingOverride time.Duration) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}

	names := cfg.CrateList()
	if manifestPath != "" {
		names, err = manifest.CrateNames(manifestPath)
		if err != nil {
			if rendered, rerr := issue.Get(issue.ManifestReadFailedId).Render("dark"); rerr == nil {
				fmt.Fprint(app.stderr, rendered)
			}
			return err
		}
	}

	client := registry.NewClient(
		registry.WithBaseURL(cfg.Registry.BaseURL),
		registry.WithUserAgent(cfg.Registry.UserAgent),
		registry.WithTimeout(cfg.RequestTimeout()),
	)

	pacing := cfg.PacingInterval()
	if pacingOverride > 0 {
		pacing = pacingOverride
	}

	opts := []audit.Option{audit.WithPacing(pacing)}
	if verbose {
		opts = append(opts, audit.WithLogger(log.NewWithOptions(app.stderr, log.Options{
			Prefix: "crateaudit",
		})))
	}

	fmt.Fprintln(app.stderr, SubtitleStyle.Render(fmt.Sprintf("Checking %d crates...", len(names))))

	report := audit.NewAuditor(client, opts...).Run(ctx, names)

	// Every single lookup failing usually means the registry itself was
	// unreachable, not that the crates are broken. Surface that on stderr;
	// the report (and the exit status) are unaffected.
	if report.Len() > 0 && report.Succeeded() == 0 {
		if rendered, rerr := issue.Get(issue.RegistryUnreachableId).Render("dark"); rerr == nil {
			fmt.Fprint(app.stderr, rendered)
		}
	}

	return audit.WriteJSON(app.stdout, report)
}
