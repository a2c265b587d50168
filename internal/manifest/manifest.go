// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// ErrNoDependencies is returned when a manifest parses cleanly but declares
// no dependencies in any recognized table.
var ErrNoDependencies = errors.New("manifest declares no dependencies")

// cargoManifest is the subset of Cargo.toml this package reads. Dependency
// tables map crate name to either a bare version string or a detailed table;
// both decode into `any`.
type cargoManifest struct {
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
	Workspace         struct {
		Dependencies map[string]any `toml:"dependencies"`
	} `toml:"workspace"`
}

// CrateNames reads a Cargo.toml and returns the registry crate names it
// depends on, deduplicated. Tables are traversed in a fixed order
// (dependencies, dev, build, workspace) with names sorted within each table,
// so the result is deterministic for a given manifest.
func CrateNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	var names []string
	seen := make(map[string]bool)

	for _, table := range []map[string]any{
		m.Dependencies,
		m.DevDependencies,
		m.BuildDependencies,
		m.Workspace.Dependencies,
	} {
		for _, name := range sortedKeys(table) {
			crate := registryName(name, table[name])
			if crate == "" || seen[crate] {
				continue
			}
			seen[crate] = true
			names = append(names, crate)
		}
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoDependencies)
	}

	return names, nil
}

// registryName resolves the crate name a dependency entry refers to on the
// registry. A detailed entry may rename the dependency locally via
// `package = "real-name"`; path and git dependencies without a registry
// package still resolve to their key, which is the common case.
func registryName(key string, entry any) string {
	detail, ok := entry.(map[string]any)
	if !ok {
		return key
	}

	if pkg, ok := detail["package"].(string); ok && pkg != "" {
		return pkg
	}

	return key
}

func sortedKeys(table map[string]any) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
