// Package parser turns an uploaded file into a sequence table.
//
// The format is chosen from the file name alone: delimited text, FASTA or a
// spreadsheet. Every failure is reported as a *ParseError so callers can
// drop the dataset and log a single diagnostic.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aria-lang/seqanalyser-go/internal/table"
)

// Format identifies how an upload is decoded.
type Format int

const (
	// FormatCSV is comma-delimited text with a header row.
	FormatCSV Format = iota
	// FormatFASTA is definition lines followed by sequence bodies.
	FormatFASTA
	// FormatSpreadsheet is an xlsx workbook; only the first sheet is read.
	FormatSpreadsheet
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatFASTA:
		return "fasta"
	case FormatSpreadsheet:
		return "spreadsheet"
	default:
		return "unknown"
	}
}

var (
	// ErrNoRecords is returned when a file decodes cleanly but holds no rows.
	ErrNoRecords = errors.New("no records found")
	// ErrMissingColumns is returned when a tabular file has fewer than two
	// columns in its header or in a row.
	ErrMissingColumns = errors.New("at least two columns are required")
)

// ParseError wraps any failure to turn an upload into a table.
type ParseError struct {
	Filename string
	Format   Format
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q as %s: %v", e.Filename, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError marks the error family.
func (e *ParseError) IsParseError() {}

// Options controls format dispatch.
type Options struct {
	// LegacyDispatch sends every non-CSV name to the FASTA reader, leaving
	// the spreadsheet reader unreachable.
	LegacyDispatch bool
}

// Option configures Parse.
type Option func(*Options)

// WithLegacyDispatch toggles legacy format dispatch.
func WithLegacyDispatch(on bool) Option {
	return func(o *Options) {
		o.LegacyDispatch = on
	}
}

// DetectFormat picks a format from filename. Matching is a case-sensitive
// substring test: "csv" wins, then "fasta" or "fa", then spreadsheet.
func DetectFormat(filename string, legacy bool) Format {
	switch {
	case strings.Contains(filename, "csv"):
		return FormatCSV
	case legacy:
		return FormatFASTA
	case strings.Contains(filename, "fasta"), strings.Contains(filename, "fa"):
		return FormatFASTA
	default:
		return FormatSpreadsheet
	}
}

// Parse decodes data according to the format implied by filename.
// On failure the returned table is nil.
func Parse(data []byte, filename string, opts ...Option) (*table.Table, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	format := DetectFormat(filename, o.LegacyDispatch)

	var (
		tbl *table.Table
		err error
	)
	switch format {
	case FormatCSV:
		tbl, err = parseCSV(data)
	case FormatFASTA:
		tbl, err = parseFASTA(data)
	default:
		tbl, err = parseSpreadsheet(data)
	}

	if err == nil && tbl.IsEmpty() {
		err = ErrNoRecords
	}
	if err != nil {
		return nil, &ParseError{Filename: filename, Format: format, Err: err}
	}
	return tbl, nil
}
