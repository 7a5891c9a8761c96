// Package table holds the normalized, in-memory form of an uploaded dataset.
//
// A Table is immutable once built: every upload produces a new Table and the
// previous one is dropped. Lookups use a linear scan so that the first
// matching record always wins.
package table

import (
	"errors"
	"fmt"

	"github.com/aria-lang/seqanalyser-go/internal/sequence"
)

// ErrNotFound is matched by errors.Is for every failed value lookup. The
// same error also unwraps to a *sequence.NotFoundError.
var ErrNotFound = errors.New("sequence not found")

// Option is one entry of the selection list built from a table.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Table is an ordered list of records in source order.
type Table struct {
	records []sequence.Record
}

// New creates a table from records. The slice is copied.
func New(records []sequence.Record) *Table {
	rs := make([]sequence.Record, len(records))
	copy(rs, records)
	return &Table{records: rs}
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// IsEmpty reports whether the table holds no records.
func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// Records returns a copy of the records in source order.
func (t *Table) Records() []sequence.Record {
	if t == nil {
		return nil
	}
	rs := make([]sequence.Record, len(t.records))
	copy(rs, t.records)
	return rs
}

// At returns the record at index i.
func (t *Table) At(i int) (sequence.Record, bool) {
	if i < 0 || i >= t.Len() {
		return sequence.Record{}, false
	}
	return t.records[i], true
}

// CountDistinctKeys returns the number of distinct identifiers.
func (t *Table) CountDistinctKeys() int {
	seen := make(map[string]struct{}, t.Len())
	for _, r := range t.Records() {
		seen[r.ID] = struct{}{}
	}
	return len(seen)
}

// Options returns one option per record, in order. Records sharing a value
// each get their own option.
func (t *Table) Options() []Option {
	opts := make([]Option, 0, t.Len())
	for _, r := range t.Records() {
		opts = append(opts, Option{Label: r.Label(), Value: r.Sequence})
	}
	return opts
}

// Values returns the option values, in order.
func (t *Table) Values() []string {
	vals := make([]string, 0, t.Len())
	for _, r := range t.Records() {
		vals = append(vals, r.Sequence)
	}
	return vals
}

// LookupByValue returns the first record whose sequence equals value.
func (t *Table) LookupByValue(value string) (sequence.Record, error) {
	for i := 0; i < t.Len(); i++ {
		if t.records[i].Sequence == value {
			return t.records[i], nil
		}
	}
	return sequence.Record{}, fmt.Errorf("%w: %w", ErrNotFound, &sequence.NotFoundError{Value: value})
}

// HasValue reports whether any record carries value.
func (t *Table) HasValue(value string) bool {
	_, err := t.LookupByValue(value)
	return err == nil
}
