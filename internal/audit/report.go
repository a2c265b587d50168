// SPDX-License-Identifier: MPL-2.0

package audit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
)

// Report is an insertion-ordered mapping from crate name to lookup Result.
// Keys are unique; the first Set of a name fixes its position, and iteration
// and JSON rendering follow that order.
type Report struct {
	names   []string
	entries map[string]Result
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{
		entries: make(map[string]Result),
	}
}

// Set records the result for a name. The first occurrence of a name fixes
// its position in the output; setting it again replaces the value in place.
func (r *Report) Set(name string, res Result) {
	if _, seen := r.entries[name]; !seen {
		r.names = append(r.names, name)
	}
	r.entries[name] = res
}

// Get returns the result recorded for a name.
func (r *Report) Get(name string) (Result, bool) {
	res, ok := r.entries[name]
	return res, ok
}

// Has reports whether a result has been recorded for a name.
func (r *Report) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Len returns the number of recorded entries.
func (r *Report) Len() int {
	return len(r.names)
}

// Succeeded returns the number of entries that resolved to a version.
func (r *Report) Succeeded() int {
	n := 0
	for _, res := range r.entries {
		if res.OK() {
			n++
		}
	}
	return n
}

// Names returns the recorded names in insertion order.
func (r *Report) Names() []string {
	return slices.Clone(r.names)
}

// MarshalJSON renders the report as a JSON object whose keys appear in
// insertion order. A map would lose the ordering, so the object is built by
// hand from individually marshaled keys and values.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("marshaling key %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(r.entries[name].Value())
		if err != nil {
			return nil, fmt.Errorf("marshaling value for %q: %w", name, err)
		}
		buf.Write(val)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteJSON writes the report to w as 2-space indented JSON followed by a
// trailing newline. Output is deterministic for identical report contents.
func WriteJSON(w io.Writer, r *Report) error {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}

	out = append(out, '\n')
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
