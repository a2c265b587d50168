// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRunCrate_PrintsDetail(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/crates/tokio" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"crate": {
				"name": "tokio",
				"description": "An event-driven, non-blocking I/O platform",
				"max_version": "1.47.1",
				"max_stable_version": "1.47.1",
				"newest_version": "1.47.1",
				"downloads": 250000000,
				"repository": "https://github.com/tokio-rs/tokio"
			},
			"versions": [
				{"num": "1.47.1", "yanked": false},
				{"num": "1.47.0", "yanked": true}
			]
		}`))
	}))
	defer srv.Close()

	app, stdout, _ := newTestApp(srv.URL, nil)

	if err := runCrate(context.Background(), app, "tokio"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"tokio", "1.47.1", "250000000", "yanked"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunCrate_NotFoundExitsNonZero(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer srv.Close()

	app, _, stderr := newTestApp(srv.URL, nil)

	err := runCrate(context.Background(), app, "no-such-crate")
	if err == nil {
		t.Fatal("expected error for unknown crate")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %T: %v", err, err)
	}
	if exitErr.Code != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.Code)
	}
	if !strings.Contains(stderr.String(), "not found") {
		t.Errorf("stderr missing not-found message:\n%s", stderr.String())
	}
}
