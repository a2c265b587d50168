// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for crateaudit.
//
// This package implements the Cobra command hierarchy for the crateaudit CLI:
// the root command, the audit run (check), single-crate lookup (crate), and
// configuration management (config).
package cmd
