// SPDX-License-Identifier: MPL-2.0

package audit

import "fmt"

// Result is the outcome of a single crate lookup: either a version string or
// a failure description. Failures are plain values rather than errors so the
// aggregation loop never has to branch on how a lookup went wrong.
type Result struct {
	version string
	failure string
}

// OK builds a successful Result carrying the resolved version.
func OK(version string) Result {
	return Result{version: version}
}

// StatusFailure builds a failed Result for a non-200 registry response.
func StatusFailure(code int) Result {
	return Result{failure: fmt.Sprintf("Error: %d", code)}
}

// Failure builds a failed Result from any other fault (transport failure,
// malformed body, missing field, cancellation).
func Failure(err error) Result {
	return Result{failure: fmt.Sprintf("Exception: %v", err)}
}

// OK reports whether the lookup succeeded.
func (r Result) OK() bool {
	return r.failure == ""
}

// Value returns the string recorded in the report: the version on success,
// the failure description otherwise.
func (r Result) Value() string {
	if r.failure != "" {
		return r.failure
	}
	return r.version
}
