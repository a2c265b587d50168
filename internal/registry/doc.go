// SPDX-License-Identifier: MPL-2.0

// Package registry implements an HTTP client for the crates.io registry API.
// It fetches per-crate metadata (latest published versions, downloads, recent
// version history) from the /api/v1/crates/{name} endpoint and surfaces
// non-200 responses as typed errors so callers can distinguish registry
// status failures from transport or decoding faults.
package registry
