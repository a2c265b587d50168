// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities: size-checked input
// handling and CUE error formatting with JSON-path prefixes, so validation
// failures point at the offending field (e.g. "registry.timeout: expected
// string, got int") instead of dumping raw CUE diagnostics.
package cueutil
