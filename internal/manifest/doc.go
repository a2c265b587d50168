// SPDX-License-Identifier: MPL-2.0

// Package manifest extracts crate names from Cargo.toml files, so an audit
// can run against a project's actual dependency list instead of a hardcoded
// one. It understands plain, detailed, and renamed dependency entries across
// the regular, dev, build, and workspace dependency tables.
package manifest
