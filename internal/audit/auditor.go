// SPDX-License-Identifier: MPL-2.0

package audit

import (
	"context"
	"errors"
	"time"

	"crateaudit-cli/internal/registry"

	"github.com/charmbracelet/log"
)

// DefaultPacing is the fixed delay between successive registry lookups.
// It exists solely to bound the outbound request rate, not for correctness.
const DefaultPacing = 100 * time.Millisecond

type (
	// Lookup resolves a crate name to its registry metadata. It is satisfied
	// by *registry.Client; tests supply fakes.
	Lookup interface {
		GetCrate(ctx context.Context, name string) (*registry.Crate, error)
	}

	// Auditor runs the sequential version check: one blocking lookup per
	// name, in input order, with a pacing delay between lookups. Per-name
	// failures are contained as Result values and never abort the run.
	Auditor struct {
		lookup Lookup
		pacing time.Duration
		logger *log.Logger // nil disables progress logging
	}

	// Option configures an Auditor during construction.
	Option func(*Auditor)
)

// WithPacing overrides the delay between successive lookups. A zero or
// negative value disables pacing.
func WithPacing(d time.Duration) Option {
	return func(a *Auditor) {
		a.pacing = d
	}
}

// WithLogger enables per-crate progress logging. The auditor writes only to
// the logger, never to stdout, so report output stays clean.
func WithLogger(l *log.Logger) Option {
	return func(a *Auditor) {
		a.logger = l
	}
}

// NewAuditor creates an Auditor over the given lookup with DefaultPacing.
func NewAuditor(lookup Lookup, opts ...Option) *Auditor {
	a := &Auditor{
		lookup: lookup,
		pacing: DefaultPacing,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run resolves every name in order, one at a time, and returns the populated
// report. The report holds exactly one entry per distinct name; duplicates in
// the input are resolved once, at their first position. When ctx is canceled
// mid-run, the names not yet attempted are recorded as failures carrying the
// context error and Run returns the partial report.
func (a *Auditor) Run(ctx context.Context, names []string) *Report {
	report := NewReport()

	for i, name := range names {
		if report.Has(name) {
			continue
		}

		if report.Len() > 0 {
			if err := a.pace(ctx); err != nil {
				a.failRemaining(report, names[i:], err)
				return report
			}
		}

		res := a.resolve(ctx, name)
		report.Set(name, res)

		if a.logger != nil {
			if res.OK() {
				a.logger.Info("resolved", "crate", name, "version", res.Value())
			} else {
				a.logger.Warn("lookup failed", "crate", name, "reason", res.Value())
			}
		}
	}

	return report
}

// resolve performs a single lookup and converts its outcome into a Result.
// Non-200 registry answers map to "Error: {status}" entries; every other
// fault maps to "Exception: {description}".
func (a *Auditor) resolve(ctx context.Context, name string) Result {
	crate, err := a.lookup.GetCrate(ctx, name)
	if err != nil {
		var se *registry.StatusError
		if errors.As(err, &se) {
			return StatusFailure(se.Code)
		}
		return Failure(err)
	}

	return OK(crate.MaxVersion)
}

// pace blocks for the pacing interval or until ctx is canceled.
func (a *Auditor) pace(ctx context.Context) error {
	if a.pacing <= 0 {
		return nil
	}

	timer := time.NewTimer(a.pacing)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// failRemaining records err for every name not yet present in the report,
// keeping the one-entry-per-name guarantee on early exit.
func (a *Auditor) failRemaining(report *Report, names []string, err error) {
	for _, name := range names {
		if !report.Has(name) {
			report.Set(name, Failure(err))
		}
	}
}
