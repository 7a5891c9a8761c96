package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/aria-lang/seqanalyser-go/internal/table"
)

// DefaultBins is the number of bins used for the summary histograms.
const DefaultBins = 10

// Histogram counts values into equal-width bins. Bin i covers
// [Dividers[i], Dividers[i+1]); the last bin also holds the upper bound.
type Histogram struct {
	Dividers []float64 `json:"dividers"`
	Counts   []int     `json:"counts"`
}

// NewGCHistogram bins the GC content of every record over [0, 1].
func NewGCHistogram(tbl *table.Table, numBins int) (*Histogram, error) {
	if tbl.IsEmpty() {
		return nil, fmt.Errorf("table cannot be empty")
	}
	if numBins <= 0 {
		return nil, fmt.Errorf("numBins must be positive")
	}

	values := make([]float64, 0, tbl.Len())
	for _, r := range tbl.Records() {
		values = append(values, math.Min(FromSequence(r.Sequence).GCContent, 1))
	}
	return newHistogram(values, 0, 1, numBins), nil
}

// NewLengthHistogram bins record lengths between the shortest and longest
// record.
func NewLengthHistogram(tbl *table.Table, numBins int) (*Histogram, error) {
	if tbl.IsEmpty() {
		return nil, fmt.Errorf("table cannot be empty")
	}
	if numBins <= 0 {
		return nil, fmt.Errorf("numBins must be positive")
	}

	values := make([]float64, 0, tbl.Len())
	for _, r := range tbl.Records() {
		values = append(values, float64(r.Len()))
	}
	lo, hi := floats.Min(values), floats.Max(values)
	if hi <= lo {
		hi = lo + 1
	}
	return newHistogram(values, lo, hi, numBins), nil
}

func newHistogram(values []float64, lo, hi float64, numBins int) *Histogram {
	dividers := floats.Span(make([]float64, numBins+1), lo, hi)

	// stat.Histogram wants sorted data strictly below the last divider.
	bounds := make([]float64, len(dividers))
	copy(bounds, dividers)
	bounds[numBins] = math.Nextafter(hi, math.Inf(1))

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	weights := stat.Histogram(nil, bounds, sorted, nil)
	counts := make([]int, numBins)
	for i, w := range weights {
		counts[i] = int(w)
	}
	return &Histogram{Dividers: dividers, Counts: counts}
}

// ModeBin returns the bounds of the fullest bin. The first wins ties.
func (h *Histogram) ModeBin() (float64, float64) {
	best := 0
	for i, c := range h.Counts {
		if c > h.Counts[best] {
			best = i
		}
	}
	return h.Dividers[best], h.Dividers[best+1]
}

// Total returns the number of values counted.
func (h *Histogram) Total() int {
	n := 0
	for _, c := range h.Counts {
		n += c
	}
	return n
}

// Format renders the histogram as text bars, one '#' per unit values.
func (h *Histogram) Format(title, unitFormat string, unit int) string {
	if unit < 1 {
		unit = 1
	}
	var b strings.Builder
	b.WriteString(title + ":\n")
	for i, c := range h.Counts {
		bounds := fmt.Sprintf(unitFormat+"-"+unitFormat, h.Dividers[i], h.Dividers[i+1])
		fmt.Fprintf(&b, "%s: %s (%d)\n", bounds, strings.Repeat("#", c/unit), c)
	}
	return b.String()
}
