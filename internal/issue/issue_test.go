// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	for _, id := range []Id{ConfigLoadFailedId, ManifestReadFailedId, RegistryUnreachableId} {
		iss := Get(id)
		if iss == nil {
			t.Fatalf("Get(%d) returned nil", id)
		}
		if iss.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, iss.Id())
		}
	}

	if Get(Id(999)) != nil {
		t.Error("Get of unknown id should return nil")
	}
}

func TestValues(t *testing.T) {
	vals := Values()
	if len(vals) != len(issues) {
		t.Errorf("Values() returned %d issues, want %d", len(vals), len(issues))
	}
}

func TestAllIssuesHaveContent(t *testing.T) {
	for id, iss := range issues {
		if strings.TrimSpace(string(iss.MarkdownMsg())) == "" {
			t.Errorf("issue %d has empty markdown", id)
		}
	}
}

func TestAllIssuesAreRenderable(t *testing.T) {
	// Swap the renderer for a pass-through so the test does not depend on
	// terminal detection inside glamour.
	orig := render
	render = func(in, _ string) (string, error) { return in, nil }
	defer func() { render = orig }()

	for id, iss := range issues {
		out, err := iss.Render("dark")
		if err != nil {
			t.Errorf("issue %d failed to render: %v", id, err)
		}
		if out == "" {
			t.Errorf("issue %d rendered empty", id)
		}
	}
}
