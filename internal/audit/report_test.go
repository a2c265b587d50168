// SPDX-License-Identifier: MPL-2.0

package audit

import (
	"bytes"
	"strings"
	"testing"
)

func TestReport_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	report := NewReport()
	names := []string{"zeta", "alpha", "mu", "beta"}
	for _, name := range names {
		report.Set(name, OK("1.0.0"))
	}

	got := report.Names()
	if len(got) != len(names) {
		t.Fatalf("expected %d names, got %d", len(names), len(got))
	}
	for i, want := range names {
		if got[i] != want {
			t.Errorf("names[%d] = %q, want %q", i, got[i], want)
		}
	}
}

func TestReport_SetTwiceKeepsPosition(t *testing.T) {
	t.Parallel()

	report := NewReport()
	report.Set("tokio", OK("1.0.0"))
	report.Set("serde", OK("2.0.0"))
	report.Set("tokio", OK("1.1.0"))

	if report.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", report.Len())
	}
	if got := report.Names()[0]; got != "tokio" {
		t.Errorf("first name = %q, want %q", got, "tokio")
	}

	res, ok := report.Get("tokio")
	if !ok {
		t.Fatal("missing entry for tokio")
	}
	if res.Value() != "1.1.0" {
		t.Errorf("value = %q, want %q", res.Value(), "1.1.0")
	}
}

func TestReport_Succeeded(t *testing.T) {
	t.Parallel()

	report := NewReport()
	report.Set("tokio", OK("1.0.0"))
	report.Set("gone", StatusFailure(404))
	report.Set("flaky", Failure(errSentinel))

	if got := report.Succeeded(); got != 1 {
		t.Errorf("Succeeded() = %d, want 1", got)
	}
}

func TestReport_MarshalJSONOrdered(t *testing.T) {
	t.Parallel()

	report := NewReport()
	report.Set("zeta", OK("3.0.0"))
	report.Set("alpha", StatusFailure(404))

	out, err := report.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"zeta":"3.0.0","alpha":"Error: 404"}`
	if string(out) != want {
		t.Errorf("MarshalJSON = %s, want %s", out, want)
	}
}

func TestWriteJSON_TwoSpaceIndent(t *testing.T) {
	t.Parallel()

	report := NewReport()
	report.Set("tokio", OK("1.47.1"))
	report.Set("foo", StatusFailure(404))

	var buf bytes.Buffer
	if err := WriteJSON(&buf, report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "{\n  \"tokio\": \"1.47.1\",\n  \"foo\": \"Error: 404\"\n}\n"
	if buf.String() != want {
		t.Errorf("WriteJSON output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteJSON_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() *Report {
		report := NewReport()
		report.Set("tokio", OK("1.47.1"))
		report.Set("serde", OK("1.0.219"))
		report.Set("bar", Failure(errSentinel))
		return report
	}

	var first, second bytes.Buffer
	if err := WriteJSON(&first, build()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := WriteJSON(&second, build()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("runs differ:\n%s\nvs:\n%s", first.String(), second.String())
	}
}

func TestResult_Values(t *testing.T) {
	t.Parallel()

	if got := OK("1.2.3").Value(); got != "1.2.3" {
		t.Errorf("OK value = %q, want %q", got, "1.2.3")
	}
	if OK("1.2.3").OK() != true {
		t.Error("OK result should report success")
	}

	if got := StatusFailure(404).Value(); got != "Error: 404" {
		t.Errorf("status failure value = %q, want %q", got, "Error: 404")
	}

	res := Failure(errSentinel)
	if res.OK() {
		t.Error("failure result should not report success")
	}
	if !strings.HasPrefix(res.Value(), "Exception: ") {
		t.Errorf("failure value = %q, want Exception prefix", res.Value())
	}
	if !strings.Contains(res.Value(), errSentinel.Error()) {
		t.Errorf("failure value %q does not contain cause %q", res.Value(), errSentinel.Error())
	}
}
