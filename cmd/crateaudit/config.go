// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"crateaudit-cli/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `crateaudit config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage crateaudit configuration",
		Long: `Manage crateaudit configuration.

Configuration is stored in:
  - Linux: ~/.config/crateaudit/config.cue
  - macOS: ~/Library/Application Support/crateaudit/config.cue
  - Windows: %APPDATA%\crateaudit\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(app.stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(app.stdout)

	cfgPath, pathErr := config.ConfigFilePath()
	if pathErr == nil && fileExistsCheck(cfgPath) && cfgFile == "" {
		fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("Config file"), cfgPath)
	} else if cfgFile != "" {
		fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("Config file"), cfgFile)
	} else {
		fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(app.stdout)

	fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("registry.base_url"), SuccessStyle.Render(cfg.Registry.BaseURL))
	fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("registry.user_agent"), SuccessStyle.Render(cfg.Registry.UserAgent))
	fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("registry.timeout"), SuccessStyle.Render(cfg.Registry.Timeout))
	fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("pacing"), SuccessStyle.Render(cfg.Pacing))
	fmt.Fprintf(app.stdout, "%s: %v\n", CmdStyle.Render("ui.verbose"), cfg.UI.Verbose)

	fmt.Fprintln(app.stdout)
	if len(cfg.Crates) > 0 {
		fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("crates"), strings.Join(cfg.Crates, ", "))
	} else {
		fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("crates"), SubtitleStyle.Render("(built-in audit list)"))
	}

	return nil
}

func initConfig(app *App) error {
	if err := config.CreateDefaultConfig(); err != nil {
		return err
	}

	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	fmt.Fprintln(app.stdout, SuccessStyle.Render("✓")+" configuration ready at "+cfgPath)
	return nil
}

func showConfigPath(app *App) error {
	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	fmt.Fprintln(app.stdout, cfgPath)
	return nil
}

// fileExistsCheck reports whether path exists and is a regular file.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
