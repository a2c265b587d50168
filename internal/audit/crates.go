// SPDX-License-Identifier: MPL-2.0

package audit

import "slices"

// defaultCrates is the built-in audit list: the direct dependencies of the
// project this tool was written for, checked against crates.io when no
// manifest or config override is supplied.
var defaultCrates = []string{
	"tokio", "hyper", "hyper-util", "tower", "bytes", "s2n-quic", "rustls", "tokio-rustls",
	"pqcrypto-mlkem", "pqcrypto-mldsa", "pqcrypto-traits", "x25519-dalek", "tracing",
	"tracing-subscriber", "metrics", "metrics-exporter-prometheus", "serde", "serde_json",
	"thiserror", "anyhow", "criterion", "rand", "aes-gcm", "chacha20poly1305", "hkdf", "sha2",
	"serde_yaml", "toml", "x509-parser", "rcgen", "ring", "webpki-roots", "time",
	"http-body-util", "h3", "hex", "async-trait", "chrono", "num_cpus", "tempfile",
	"reqwest", "moka", "wiremock", "arrow", "arrow-schema", "arrow-array", "arrow-buffer",
	"polars", "noodles", "wasmtime", "wat", "pem",
}

// DefaultCrates returns a fresh copy of the built-in crate list, so callers
// can modify the slice without affecting later calls.
func DefaultCrates() []string {
	return slices.Clone(defaultCrates)
}
