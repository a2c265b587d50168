// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"crateaudit-cli/internal/registry"
	"crateaudit-cli/pkg/types"

	"github.com/spf13/cobra"
)

// maxVersionRows bounds the version history shown by `crate`.
const maxVersionRows = 8

// newCrateCommand creates the `crateaudit crate` command.
func newCrateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "crate <name>",
		Short: "Show registry details for a single crate",
		Long: `Show registry details for a single crate.

Fetches the crate's metadata from crates.io and prints its latest
versions, download count, and recent version history.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrate(cmd.Context(), app, args[0])
		},
	}
}

func runCrate(ctx context.Context, app *App, name string) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}

	client := registry.NewClient(
		registry.WithBaseURL(cfg.Registry.BaseURL),
		registry.WithUserAgent(cfg.Registry.UserAgent),
		registry.WithTimeout(cfg.RequestTimeout()),
	)

	crate, err := client.GetCrate(ctx, name)
	if err != nil {
		var se *registry.StatusError
		switch {
		case errors.As(err, &se) && se.Code == http.StatusNotFound:
			fmt.Fprintln(app.stderr, ErrorStyle.Render("Error: ")+fmt.Sprintf("crate %q not found on the registry", name))
		case errors.As(err, &se) && se.Code == http.StatusTooManyRequests:
			fmt.Fprintln(app.stderr, ErrorStyle.Render("Error: ")+"the registry is throttling requests; "+se.Error())
		default:
			fmt.Fprintln(app.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		}
		return &ExitError{Code: types.ExitCode(1), Err: err}
	}

	printCrate(app, crate)
	return nil
}

// printCrate renders the crate detail view to stdout.
func printCrate(app *App, crate *registry.Crate) {
	fmt.Fprintln(app.stdout, TitleStyle.Render(crate.Name))
	if crate.Description != "" {
		fmt.Fprintln(app.stdout, SubtitleStyle.Render(crate.Description))
	}
	fmt.Fprintln(app.stdout)

	fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("max_version"), SuccessStyle.Render(crate.MaxVersion))
	if crate.MaxStableVersion != "" {
		fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("max_stable_version"), SuccessStyle.Render(crate.MaxStableVersion))
	}
	if crate.NewestVersion != "" {
		fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("newest_version"), SuccessStyle.Render(crate.NewestVersion))
	}
	fmt.Fprintf(app.stdout, "%s: %d\n", CmdStyle.Render("downloads"), crate.Downloads)
	if crate.Repository != "" {
		fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("repository"), crate.Repository)
	}

	if len(crate.RecentVersions) == 0 {
		return
	}

	fmt.Fprintln(app.stdout)
	fmt.Fprintln(app.stdout, SubtitleStyle.Render("Recent versions:"))
	for i, v := range crate.RecentVersions {
		if i == maxVersionRows {
			fmt.Fprintf(app.stdout, "  %s\n", SubtitleStyle.Render(fmt.Sprintf("... and %d more", len(crate.RecentVersions)-maxVersionRows)))
			break
		}
		line := "  " + v.Num
		if v.Yanked {
			line += " " + WarningStyle.Render("(yanked)")
		}
		fmt.Fprintln(app.stdout, line)
	}
}
