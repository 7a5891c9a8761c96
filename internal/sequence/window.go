package sequence

import "fmt"

// DefaultWindowWidth is the width of the GC window scan.
const DefaultWindowWidth = 10

// WindowResult is the outcome of a GC window scan. Found is false when the
// sequence was too short for the scan range to contain any offset.
type WindowResult struct {
	Subsequence string  `json:"subsequence"`
	Offset      int     `json:"offset"`
	GCFraction  float64 `json:"gc_fraction"`
	Found       bool    `json:"found"`
}

// MaxGCWindow finds the width-long substring of seq with the highest GC
// fraction.
//
// Offsets and widths count characters, not bytes. Offsets 0 through
// n-width-1 are scanned, where n is the character length of seq, so the
// final full window is never considered and a sequence needs at least
// width+1 characters to yield a result. The earliest window wins ties.
func MaxGCWindow(seq string, width int) (WindowResult, error) {
	if width <= 0 {
		return WindowResult{}, &InvalidWidthError{Width: width}
	}

	runes := []rune(seq)
	best := WindowResult{GCFraction: -1}
	for i := 0; i < len(runes)-width; i++ {
		sub := runes[i : i+width]
		frac := float64(gcCount(sub)) / float64(width)
		if frac > best.GCFraction {
			best = WindowResult{
				Subsequence: string(sub),
				Offset:      i,
				GCFraction:  frac,
				Found:       true,
			}
		}
	}

	if !best.Found {
		return WindowResult{}, nil
	}
	return best, nil
}

// ScanRange returns the number of offsets MaxGCWindow inspects for a
// sequence of n characters.
func ScanRange(n, width int) int {
	if n-width < 0 {
		return 0
	}
	return n - width
}

func (w WindowResult) String() string {
	if !w.Found {
		return "None"
	}
	return fmt.Sprintf("%s (offset %d, GC %.2f)", w.Subsequence, w.Offset, w.GCFraction)
}
