package sequence

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Composition is the relative frequency of each canonical base.
//
// Frequencies are taken over the A/T/G/C count only, so characters outside
// that set change neither the numerator nor the denominator. When the
// sequence holds no canonical base every frequency is zero.
type Composition struct {
	Counts      BaseCounts         `json:"counts"`
	Frequencies map[string]float64 `json:"frequencies"`
}

// Analyze computes the nucleotide composition of seq.
func Analyze(seq string) Composition {
	counts := CountBases(seq)
	total := counts.Canonical()

	freqs := make(map[string]float64, len(Bases))
	for _, b := range Bases {
		if total == 0 {
			freqs[string(b)] = 0
			continue
		}
		freqs[string(b)] = float64(counts.Get(b)) / float64(total)
	}

	return Composition{
		Counts:      counts,
		Frequencies: freqs,
	}
}

// Frequency returns the frequency of base, or zero for a non-canonical base.
func (c Composition) Frequency(base byte) float64 {
	return c.Frequencies[string(base)]
}

// Values returns the frequencies in A, T, G, C order.
func (c Composition) Values() []float64 {
	vals := make([]float64, len(Bases))
	for i, b := range Bases {
		vals[i] = c.Frequency(b)
	}
	return vals
}

// Sum returns the total of the four frequencies: 1 for any sequence with at
// least one canonical base, 0 otherwise.
func (c Composition) Sum() float64 {
	return floats.Sum(c.Values())
}

// IsEmpty reports whether no canonical base was seen.
func (c Composition) IsEmpty() bool {
	return c.Counts.Canonical() == 0
}

func (c Composition) String() string {
	parts := make([]string, len(Bases))
	for i, b := range Bases {
		parts[i] = fmt.Sprintf("%c=%.3f", b, c.Frequency(b))
	}
	return strings.Join(parts, " ")
}
