// Package session holds the working context of one user: the loaded
// dataset and the selected sequence.
//
// Upload, Select and Deselect change the dataset and the selection. Every
// output is recomputed from those two values on request; only the message of
// the last explicit search is kept, until the selection changes.
package session

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/aria-lang/seqanalyser-go/internal/parser"
	"github.com/aria-lang/seqanalyser-go/internal/sequence"
	"github.com/aria-lang/seqanalyser-go/internal/table"
)

var (
	// ErrNoDataset is returned when selecting before any successful upload.
	ErrNoDataset = errors.New("no dataset loaded")
	// ErrNoSelection is returned when an output needs a selected sequence.
	ErrNoSelection = errors.New("no sequence selected")
)

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger used for upload diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *State) {
		s.logger = l
	}
}

// WithLegacyDispatch routes every non-CSV upload to the FASTA reader.
func WithLegacyDispatch(on bool) Option {
	return func(s *State) {
		s.parseOpts = append(s.parseOpts, parser.WithLegacyDispatch(on))
	}
}

// WithWindowWidth sets the GC window width. Non-positive values are ignored.
func WithWindowWidth(width int) Option {
	return func(s *State) {
		if width > 0 {
			s.width = width
		}
	}
}

// State is one session. It is safe for concurrent use.
type State struct {
	mu sync.RWMutex

	tbl          *table.Table
	selected     string
	hasSelection bool
	filename     string
	lastSearch   *SearchOutcome

	logger    *log.Logger
	parseOpts []parser.Option
	width     int
}

// New creates an empty session.
func New(opts ...Option) *State {
	s := &State{
		logger: log.New(io.Discard),
		width:  sequence.DefaultWindowWidth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upload parses data and replaces the dataset. The previous dataset and the
// selection are dropped before parsing, so a failed upload leaves the
// session empty.
func (s *State) Upload(data []byte, filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tbl = nil
	s.filename = ""
	s.clearSelection()

	tbl, err := parser.Parse(data, filename, s.parseOpts...)
	if err != nil {
		s.logger.Warn("upload rejected", "filename", filename, "bytes", len(data), "err", err)
		return err
	}

	s.tbl = tbl
	s.filename = filename
	s.logger.Info("dataset loaded", "filename", filename, "records", tbl.Len(), "distinct", tbl.CountDistinctKeys())
	return nil
}

// Select makes value the active selection. Any value present in the
// dataset is accepted, the empty string included. A value not present is
// rejected and the current selection is kept.
func (s *State) Select(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tbl == nil {
		return ErrNoDataset
	}
	if _, err := s.tbl.LookupByValue(value); err != nil {
		s.logger.Debug("selection rejected", "value", value)
		return err
	}

	s.selected = value
	s.hasSelection = true
	s.lastSearch = nil
	return nil
}

// Deselect clears the selection and keeps the dataset.
func (s *State) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearSelection()
}

// Clear drops the dataset and the selection.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tbl = nil
	s.filename = ""
	s.clearSelection()
}

func (s *State) clearSelection() {
	s.selected = ""
	s.hasSelection = false
	s.lastSearch = nil
}

// Table returns the loaded dataset, or nil.
func (s *State) Table() *table.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tbl
}

// Filename returns the name of the loaded upload.
func (s *State) Filename() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filename
}

// Selected returns the selected value and whether one is set.
func (s *State) Selected() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected, s.hasSelection
}

// View derives every output for the current dataset and selection, plus
// the message of the last search.
func (s *State) View() (View, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, err := Derive(s.tbl, s.selected, s.hasSelection, s.width)
	if err != nil {
		return v, err
	}
	if s.lastSearch != nil {
		last := *s.lastSearch
		v.LastSearch = &last
		v.SearchMessage = last.Message
	}
	return v, nil
}

// Search tests query against the selected value and keeps the outcome for
// View.
func (s *State) Search(query string) SearchOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := Search(s.selected, s.hasSelection, query)
	s.lastSearch = &out
	return out
}

// LastSearch returns the outcome of the last search since the selection
// changed.
func (s *State) LastSearch() (SearchOutcome, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastSearch == nil {
		return SearchOutcome{}, false
	}
	return *s.lastSearch, true
}

// Composition returns the composition of the selected value.
func (s *State) Composition() (sequence.Composition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasSelection {
		return sequence.Composition{}, ErrNoSelection
	}
	return sequence.Analyze(s.selected), nil
}
