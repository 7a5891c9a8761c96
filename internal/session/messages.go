package session

import (
	"fmt"

	"github.com/aria-lang/seqanalyser-go/internal/sequence"
)

// NoSelectionMessage is reported by a search with nothing selected.
const NoSelectionMessage = "Please select a sequence from the dropdown."

// DatasetSizeMessage reports the number of distinct identifiers.
func DatasetSizeMessage(n int) string {
	return fmt.Sprintf("Number of sequences in uploaded file: %d", n)
}

// LengthMessage reports the length of the selected sequence.
func LengthMessage(n int) string {
	return fmt.Sprintf("Length of selected sequence: %d", n)
}

// GCWindowMessage reports the highest-GC window, or None.
func GCWindowMessage(w sequence.WindowResult) string {
	sub := "None"
	if w.Found {
		sub = w.Subsequence
	}
	return fmt.Sprintf("Subsequence with high GC content: %s", sub)
}

// SearchMessage reports the outcome of a substring search.
func SearchMessage(query string, found bool) string {
	if found {
		return fmt.Sprintf("Subsequence '%s' found in selected sequence!", query)
	}
	return fmt.Sprintf("Subsequence '%s' not found in selected sequence", query)
}
