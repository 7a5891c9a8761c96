package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountBases(t *testing.T) {
	counts := CountBases("AATTTGGGCCCCN")

	assert.Equal(t, 2, counts.A)
	assert.Equal(t, 3, counts.T)
	assert.Equal(t, 3, counts.G)
	assert.Equal(t, 4, counts.C)
	assert.Equal(t, 1, counts.Other)
	assert.Equal(t, 12, counts.Canonical())
}

func TestCountBasesCaseSensitive(t *testing.T) {
	counts := CountBases("atgcATGC")

	assert.Equal(t, 4, counts.Canonical())
	assert.Equal(t, 4, counts.Other)
}

func TestBaseCountsGet(t *testing.T) {
	counts := CountBases("AAGC")

	assert.Equal(t, 2, counts.Get('A'))
	assert.Equal(t, 0, counts.Get('T'))
	assert.Equal(t, 1, counts.Get('G'))
	assert.Equal(t, 1, counts.Get('C'))
	assert.Equal(t, 0, counts.Get('N'))
}

func TestRecordLabel(t *testing.T) {
	r := NewRecord("seq1", "ATGCATGCAT")

	assert.Equal(t, "seq1 - ATGCATGCAT", r.Label())
	assert.Equal(t, 10, r.Len())
	assert.Equal(t, ">seq1\nATGCATGCAT", r.String())
}

func TestRecordLenCountsCharacters(t *testing.T) {
	r := NewRecord("seq1", "ÀÀÀÀÀÀÀÀÀÀG")

	assert.Equal(t, 11, r.Len())
	assert.Equal(t, 1, CountBases(r.Sequence).G)
	assert.Equal(t, 10, CountBases(r.Sequence).Other)
}
