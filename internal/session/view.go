package session

import (
	"fmt"

	"github.com/aria-lang/seqanalyser-go/internal/sequence"
	"github.com/aria-lang/seqanalyser-go/internal/table"
)

// View is everything a presentation layer shows for one session. It is
// derived from scratch from the table and the selection each time.
type View struct {
	HasDataset     bool           `json:"has_dataset"`
	DatasetSize    int            `json:"dataset_size"`
	DatasetMessage string         `json:"dataset_message,omitempty"`
	Options        []table.Option `json:"options"`

	Selected      string `json:"selected,omitempty"`
	HasSelection  bool   `json:"has_selection"`
	Length        int    `json:"length"`
	LengthMessage string `json:"length_message,omitempty"`

	Composition     *sequence.Composition  `json:"composition,omitempty"`
	GCWindow        *sequence.WindowResult `json:"gc_window,omitempty"`
	GCWindowMessage string                 `json:"gc_window_message,omitempty"`

	LastSearch    *SearchOutcome `json:"last_search,omitempty"`
	SearchMessage string         `json:"search_message,omitempty"`
}

// SearchOutcome is the result of an explicit search request.
type SearchOutcome struct {
	Query     string `json:"query"`
	Performed bool   `json:"performed"`
	Found     bool   `json:"found"`
	Positions []int  `json:"positions,omitempty"`
	Message   string `json:"message"`
}

// Derive builds a View from a table and an optional selected value.
// Selecting a value absent from tbl is an error.
func Derive(tbl *table.Table, selected string, hasSelection bool, width int) (View, error) {
	v := View{Options: []table.Option{}}

	if tbl != nil {
		v.HasDataset = true
		v.DatasetSize = tbl.CountDistinctKeys()
		v.DatasetMessage = DatasetSizeMessage(v.DatasetSize)
		v.Options = tbl.Options()
	}

	if !hasSelection {
		return v, nil
	}

	rec, err := tbl.LookupByValue(selected)
	if err != nil {
		return v, err
	}

	window, err := sequence.MaxGCWindow(selected, width)
	if err != nil {
		return v, fmt.Errorf("scanning GC window: %w", err)
	}
	comp := sequence.Analyze(selected)

	v.Selected = selected
	v.HasSelection = true
	v.Length = rec.Len()
	v.LengthMessage = LengthMessage(rec.Len())
	v.Composition = &comp
	v.GCWindow = &window
	v.GCWindowMessage = GCWindowMessage(window)
	return v, nil
}

// Search runs query against the selected value.
func Search(selected string, hasSelection bool, query string) SearchOutcome {
	if !hasSelection {
		return SearchOutcome{Query: query, Message: NoSelectionMessage}
	}

	found := sequence.Contains(selected, query)
	return SearchOutcome{
		Query:     query,
		Performed: true,
		Found:     found,
		Positions: sequence.FindAll(selected, query),
		Message:   SearchMessage(query, found),
	}
}
