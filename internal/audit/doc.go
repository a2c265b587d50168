// SPDX-License-Identifier: MPL-2.0

// Package audit implements the sequential version check over a list of crate
// names. Each name resolves to a Result (a version string or a failure
// description), results are collected into an order-preserving Report, and a
// fixed pacing interval separates successive registry lookups.
//
// The package is organized into three concerns:
//   - result.go: the per-crate outcome type (version vs. failure description)
//   - report.go: the ordered name-to-result mapping and its JSON rendering
//   - auditor.go: the paced sequential loop driving a registry lookup
package audit
