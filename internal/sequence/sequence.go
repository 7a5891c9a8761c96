// Package sequence provides the sequence record type and the per-sequence
// analyses: nucleotide composition, the highest-GC window and substring
// search.
//
// Sequence values are treated as opaque strings. Uppercase A, C, G and T are
// the only symbols the analyses recognise; nothing is normalised or rejected.
package sequence

import (
	"fmt"
	"unicode/utf8"
)

// Canonical nucleotide symbols in display order.
const (
	Adenine  byte = 'A'
	Thymine  byte = 'T'
	Guanine  byte = 'G'
	Cytosine byte = 'C'
)

// Bases lists the canonical nucleotides in the order they are reported.
var Bases = [4]byte{Adenine, Thymine, Guanine, Cytosine}

// Record is one row of an uploaded dataset: an identifier and the value
// taken from the second column (or the FASTA body).
type Record struct {
	ID       string `json:"id"`
	Sequence string `json:"sequence"`
}

// NewRecord creates a record. Neither field is validated.
func NewRecord(id, seq string) Record {
	return Record{ID: id, Sequence: seq}
}

// Len returns the length of the sequence value in characters.
func (r Record) Len() int {
	return utf8.RuneCountInString(r.Sequence)
}

// Label is the text shown for the record in a selection list.
func (r Record) Label() string {
	return fmt.Sprintf("%s - %s", r.ID, r.Sequence)
}

// String returns the record in FASTA form without line wrapping.
func (r Record) String() string {
	return fmt.Sprintf(">%s\n%s", r.ID, r.Sequence)
}

// BaseCounts holds literal counts of the canonical bases.
// Other characters are tallied in Other.
type BaseCounts struct {
	A     int
	T     int
	G     int
	C     int
	Other int
}

// CountBases counts A, T, G and C in seq. Matching is case-sensitive.
// Other counts every remaining character.
func CountBases(seq string) BaseCounts {
	var counts BaseCounts
	for _, r := range seq {
		switch r {
		case rune(Adenine):
			counts.A++
		case rune(Thymine):
			counts.T++
		case rune(Guanine):
			counts.G++
		case rune(Cytosine):
			counts.C++
		default:
			counts.Other++
		}
	}
	return counts
}

// Canonical returns the number of A, T, G and C characters.
func (bc BaseCounts) Canonical() int {
	return bc.A + bc.T + bc.G + bc.C
}

// Get returns the count for one canonical base, or zero for any other byte.
func (bc BaseCounts) Get(base byte) int {
	switch base {
	case Adenine:
		return bc.A
	case Thymine:
		return bc.T
	case Guanine:
		return bc.G
	case Cytosine:
		return bc.C
	}
	return 0
}

// gcCount counts G and C in s.
func gcCount(s []rune) int {
	n := 0
	for _, r := range s {
		if r == rune(Guanine) || r == rune(Cytosine) {
			n++
		}
	}
	return n
}
