// SPDX-License-Identifier: MPL-2.0

package audit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"crateaudit-cli/internal/registry"
)

var errSentinel = errors.New("connection reset by peer")

// fakeLookup resolves crate names from a canned table. Unknown names return
// notFoundErr when set, otherwise errSentinel.
type fakeLookup struct {
	versions    map[string]string
	errs        map[string]error
	calls       []string
	delay       time.Duration
	notFoundErr error
}

func (f *fakeLookup) GetCrate(ctx context.Context, name string) (*registry.Crate, error) {
	f.calls = append(f.calls, name)

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err, ok := f.errs[name]; ok {
		return nil, err
	}
	if v, ok := f.versions[name]; ok {
		return &registry.Crate{Name: name, MaxVersion: v}, nil
	}
	if f.notFoundErr != nil {
		return nil, f.notFoundErr
	}
	return nil, errSentinel
}

func TestRun_OneEntryPerName(t *testing.T) {
	t.Parallel()

	lookup := &fakeLookup{versions: map[string]string{
		"tokio": "1.47.1",
		"serde": "1.0.219",
		"rand":  "0.9.2",
	}}

	names := []string{"tokio", "serde", "rand"}
	report := NewAuditor(lookup, WithPacing(0)).Run(context.Background(), names)

	if report.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", report.Len())
	}
	for i, want := range names {
		if report.Names()[i] != want {
			t.Errorf("names[%d] = %q, want %q", i, report.Names()[i], want)
		}
	}
}

func TestRun_SuccessRecordsMaxVersion(t *testing.T) {
	t.Parallel()

	lookup := &fakeLookup{versions: map[string]string{"tokio": "1.47.1"}}
	report := NewAuditor(lookup, WithPacing(0)).Run(context.Background(), []string{"tokio"})

	res, ok := report.Get("tokio")
	if !ok {
		t.Fatal("missing entry for tokio")
	}
	if res.Value() != "1.47.1" {
		t.Errorf("value = %q, want %q", res.Value(), "1.47.1")
	}
}

func TestRun_NotFoundRecordsStatusFailure(t *testing.T) {
	t.Parallel()

	lookup := &fakeLookup{
		versions:    map[string]string{"tokio": "1.47.1"},
		notFoundErr: &registry.StatusError{Code: 404},
	}

	report := NewAuditor(lookup, WithPacing(0)).Run(context.Background(), []string{"foo", "tokio"})

	res, _ := report.Get("foo")
	if !strings.Contains(res.Value(), "404") {
		t.Errorf("value = %q, want it to contain 404", res.Value())
	}

	// The failure must not stop the run.
	res, ok := report.Get("tokio")
	if !ok || res.Value() != "1.47.1" {
		t.Errorf("tokio entry = %v (ok=%v), want 1.47.1", res.Value(), ok)
	}
}

func TestRun_TransportFaultRecordsException(t *testing.T) {
	t.Parallel()

	lookup := &fakeLookup{
		versions: map[string]string{"tokio": "1.47.1"},
		errs:     map[string]error{"bar": errSentinel},
	}

	report := NewAuditor(lookup, WithPacing(0)).Run(context.Background(), []string{"bar", "tokio"})

	res, _ := report.Get("bar")
	if !strings.HasPrefix(res.Value(), "Exception: ") {
		t.Errorf("value = %q, want Exception prefix", res.Value())
	}
	if !strings.Contains(res.Value(), errSentinel.Error()) {
		t.Errorf("value = %q, want it to contain %q", res.Value(), errSentinel.Error())
	}

	if res, _ := report.Get("tokio"); res.Value() != "1.47.1" {
		t.Errorf("tokio entry = %q, want 1.47.1", res.Value())
	}
}

func TestRun_DuplicateNamesResolveOnce(t *testing.T) {
	t.Parallel()

	lookup := &fakeLookup{versions: map[string]string{"tokio": "1.47.1", "serde": "1.0.219"}}
	report := NewAuditor(lookup, WithPacing(0)).Run(context.Background(), []string{"tokio", "serde", "tokio"})

	if report.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", report.Len())
	}
	if len(lookup.calls) != 2 {
		t.Errorf("expected 2 lookups, got %d (%v)", len(lookup.calls), lookup.calls)
	}
}

func TestRun_PacingAppliedBetweenLookups(t *testing.T) {
	t.Parallel()

	const pacing = 20 * time.Millisecond

	lookup := &fakeLookup{versions: map[string]string{
		"a": "1.0.0", "b": "1.0.0", "c": "1.0.0",
	}}

	start := time.Now()
	NewAuditor(lookup, WithPacing(pacing)).Run(context.Background(), []string{"a", "b", "c"})
	elapsed := time.Since(start)

	// Three names mean at least two pacing intervals.
	if min := 2 * pacing; elapsed < min {
		t.Errorf("run took %s, want at least %s", elapsed, min)
	}
}

func TestRun_CancellationRecordsRemaining(t *testing.T) {
	t.Parallel()

	lookup := &fakeLookup{versions: map[string]string{
		"a": "1.0.0", "b": "1.0.0", "c": "1.0.0",
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := NewAuditor(lookup, WithPacing(time.Hour)).Run(ctx, []string{"a", "b", "c"})

	// One entry per name even on early exit.
	if report.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", report.Len())
	}

	// The first lookup runs before any pacing; the rest are canceled.
	if res, _ := report.Get("a"); res.Value() != "1.0.0" {
		t.Errorf("entry a = %q, want 1.0.0", res.Value())
	}
	for _, name := range []string{"b", "c"} {
		res, _ := report.Get(name)
		if !strings.Contains(res.Value(), context.Canceled.Error()) {
			t.Errorf("entry %s = %q, want it to mention cancellation", name, res.Value())
		}
	}
}

func TestRun_EmptyInput(t *testing.T) {
	t.Parallel()

	report := NewAuditor(&fakeLookup{}, WithPacing(0)).Run(context.Background(), nil)
	if report.Len() != 0 {
		t.Errorf("expected empty report, got %d entries", report.Len())
	}

	var out strings.Builder
	if err := WriteJSON(&out, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "{}\n" {
		t.Errorf("output = %q, want %q", out.String(), "{}\n")
	}
}

func TestDefaultCrates_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := DefaultCrates()
	if len(first) == 0 {
		t.Fatal("default crate list is empty")
	}
	if first[0] != "tokio" {
		t.Errorf("first crate = %q, want %q", first[0], "tokio")
	}

	first[0] = "mutated"
	if DefaultCrates()[0] != "tokio" {
		t.Error("mutating the returned slice changed the default list")
	}
}
