// Package stats provides summary statistics for a loaded dataset.
package stats

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/aria-lang/seqanalyser-go/internal/sequence"
	"github.com/aria-lang/seqanalyser-go/internal/table"
)

// SequenceStats describes a single selected sequence.
type SequenceStats struct {
	Length      int                  `json:"length"`
	Counts      sequence.BaseCounts  `json:"counts"`
	Composition sequence.Composition `json:"composition"`
	GCContent   float64              `json:"gc_content"`
}

// FromSequence calculates statistics for one sequence value. GC content is
// taken over the canonical bases, matching the composition.
func FromSequence(seq string) *SequenceStats {
	comp := sequence.Analyze(seq)
	return &SequenceStats{
		Length:      utf8.RuneCountInString(seq),
		Counts:      comp.Counts,
		Composition: comp,
		GCContent:   comp.Frequency(sequence.Guanine) + comp.Frequency(sequence.Cytosine),
	}
}

func (s *SequenceStats) String() string {
	return fmt.Sprintf(`SequenceStats {
  length: %d
  GC content: %.1f%%
  A: %d, T: %d, G: %d, C: %d, other: %d
}`, s.Length, s.GCContent*100,
		s.Counts.A, s.Counts.T, s.Counts.G, s.Counts.C, s.Counts.Other)
}

// Summary is the aggregate view of a table.
type Summary struct {
	Count         int     `json:"count"`
	DistinctKeys  int     `json:"distinct_keys"`
	TotalBases    int     `json:"total_bases"`
	MinLength     int     `json:"min_length"`
	MaxLength     int     `json:"max_length"`
	MeanLength    float64 `json:"mean_length"`
	StdDevLength  float64 `json:"stddev_length"`
	MedianLength  int     `json:"median_length"`
	MeanGCContent float64 `json:"mean_gc_content"`
	N50           int     `json:"n50"`

	GCHistogram     *Histogram `json:"gc_histogram"`
	LengthHistogram *Histogram `json:"length_histogram"`
}

// FromTable calculates a summary for every record in tbl.
func FromTable(tbl *table.Table) (*Summary, error) {
	if tbl.IsEmpty() {
		return nil, fmt.Errorf("table cannot be empty")
	}

	records := tbl.Records()
	count := len(records)
	lengths := make([]int, count)
	flengths := make([]float64, count)
	gc := make([]float64, count)

	for i, r := range records {
		lengths[i] = r.Len()
		flengths[i] = float64(r.Len())
		gc[i] = FromSequence(r.Sequence).GCContent
	}

	sorted := make([]int, count)
	copy(sorted, lengths)
	sort.Ints(sorted)

	mid := count / 2
	var median int
	if count%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	stddev := 0.0
	if count > 1 {
		stddev = stat.StdDev(flengths, nil)
	}

	gcHist, err := NewGCHistogram(tbl, DefaultBins)
	if err != nil {
		return nil, err
	}
	lengthHist, err := NewLengthHistogram(tbl, DefaultBins)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Count:         count,
		DistinctKeys:  tbl.CountDistinctKeys(),
		TotalBases:    int(floats.Sum(flengths)),
		MinLength:     sorted[0],
		MaxLength:     sorted[count-1],
		MeanLength:    stat.Mean(flengths, nil),
		StdDevLength:  stddev,
		MedianLength:  median,
		MeanGCContent: stat.Mean(gc, nil),
		N50:           n50(sorted),

		GCHistogram:     gcHist,
		LengthHistogram: lengthHist,
	}, nil
}

// n50 returns the length at which half of all bases sit in sequences of
// that length or longer. sorted must be in ascending order.
func n50(sorted []int) int {
	total := 0
	for _, l := range sorted {
		total += l
	}

	half := total / 2
	running := 0
	for i := len(sorted) - 1; i >= 0; i-- {
		running += sorted[i]
		if running >= half {
			return sorted[i]
		}
	}
	return sorted[len(sorted)-1]
}

// Histograms renders the GC and length histograms as text.
func (s *Summary) Histograms() string {
	return s.GCHistogram.Format("GC Content Histogram", "%.2f", 1) + "\n" +
		s.LengthHistogram.Format("Length Histogram", "%.0f", 1)
}

func (s *Summary) String() string {
	return fmt.Sprintf(`Summary {
  count: %d
  distinct keys: %d
  total_bases: %d
  length range: %d - %d
  mean length: %.1f (sd %.1f)
  median length: %d
  mean GC: %.1f%%
  N50: %d
}`, s.Count, s.DistinctKeys, s.TotalBases, s.MinLength, s.MaxLength,
		s.MeanLength, s.StdDevLength, s.MedianLength, s.MeanGCContent*100, s.N50)
}
