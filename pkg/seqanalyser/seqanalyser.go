// Package seqanalyser provides a high-level API over the sequence analysis
// engine.
//
// Example usage:
//
//	tbl, err := seqanalyser.ReadFile("sequences.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, opt := range tbl.Options() {
//	    comp := seqanalyser.Analyze(opt.Value)
//	    fmt.Println(opt.Label, comp)
//	}
package seqanalyser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aria-lang/seqanalyser-go/internal/chart"
	"github.com/aria-lang/seqanalyser-go/internal/parser"
	"github.com/aria-lang/seqanalyser-go/internal/sequence"
	"github.com/aria-lang/seqanalyser-go/internal/session"
	"github.com/aria-lang/seqanalyser-go/internal/stats"
	"github.com/aria-lang/seqanalyser-go/internal/table"
)

// Re-export types for convenience
type (
	Record        = sequence.Record
	Composition   = sequence.Composition
	WindowResult  = sequence.WindowResult
	Table         = table.Table
	Option        = table.Option
	Format        = parser.Format
	ParseError    = parser.ParseError
	Session       = session.State
	SessionOption = session.Option
	View          = session.View
	SearchOutcome = session.SearchOutcome
	Summary       = stats.Summary
	Histogram     = stats.Histogram
)

// Constants
const (
	FormatCSV          = parser.FormatCSV
	FormatFASTA        = parser.FormatFASTA
	FormatSpreadsheet  = parser.FormatSpreadsheet
	DefaultWindowWidth = sequence.DefaultWindowWidth
)

// Errors
var (
	ErrNotFound    = table.ErrNotFound
	ErrNoRecords   = parser.ErrNoRecords
	ErrNoDataset   = session.ErrNoDataset
	ErrNoSelection = session.ErrNoSelection
)

// Parse decodes an upload into a table using the file name to pick the format.
func Parse(data []byte, filename string, legacyDispatch bool) (*Table, error) {
	return parser.Parse(data, filename, parser.WithLegacyDispatch(legacyDispatch))
}

// ReadFile reads and parses a local file with fixed format dispatch.
func ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	return parser.Parse(data, filepath.Base(path))
}

// NewSession creates an empty session.
func NewSession(opts ...SessionOption) *Session {
	return session.New(opts...)
}

// Analyze computes nucleotide composition.
func Analyze(seq string) Composition {
	return sequence.Analyze(seq)
}

// MaxGCWindow finds the highest-GC window of the default width.
func MaxGCWindow(seq string) (WindowResult, error) {
	return sequence.MaxGCWindow(seq, sequence.DefaultWindowWidth)
}

// Contains reports whether query occurs in target.
func Contains(target, query string) bool {
	return sequence.Contains(target, query)
}

// Summarize calculates dataset statistics.
func Summarize(tbl *Table) (*Summary, error) {
	return stats.FromTable(tbl)
}

// WriteCompositionSVG renders a composition bar chart.
func WriteCompositionSVG(w io.Writer, comp Composition) error {
	return chart.WriteCompositionSVG(w, comp, chart.DefaultWidth, chart.DefaultHeight)
}

// WriteFASTA writes every record of tbl to w, wrapping bodies at 80 columns.
func WriteFASTA(w io.Writer, tbl *Table) error {
	for _, r := range tbl.Records() {
		if _, err := fmt.Fprintf(w, ">%s\n", r.ID); err != nil {
			return fmt.Errorf("writing sequence: %w", err)
		}
		for i := 0; i < len(r.Sequence); i += 80 {
			end := i + 80
			if end > len(r.Sequence) {
				end = len(r.Sequence)
			}
			if _, err := fmt.Fprintln(w, r.Sequence[i:end]); err != nil {
				return fmt.Errorf("writing sequence: %w", err)
			}
		}
	}
	return nil
}

// Version returns the analyser version.
func Version() string {
	return "1.0.0"
}

// Info returns information about the analyser.
func Info() string {
	return fmt.Sprintf(`seqanalyser v%s - DNA Sequence Analyser

Features:
  - CSV, FASTA and spreadsheet ingestion
  - Nucleotide composition
  - Highest-GC window scan
  - Substring search
  - Per-client sessions over HTTP
`, Version())
}
