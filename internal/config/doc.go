// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/crateaudit/config.cue (or XDG equivalent on
// Linux, ~/Library/Application Support/crateaudit/config.cue on macOS,
// %APPDATA%\crateaudit\config.cue on Windows). It covers the registry endpoint and
// identification, the pacing interval between lookups, an optional crate list override,
// and UI settings.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to
// ensure type safety and provide clear error messages for invalid configurations.
package config
