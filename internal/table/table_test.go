package table

import (
	"errors"
	"testing"

	"github.com/aria-lang/seqanalyser-go/internal/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	return New([]sequence.Record{
		{ID: "seq1", Sequence: "ATGCATGCAT"},
		{ID: "seq2", Sequence: "GGGGCCCCAA"},
		{ID: "seq1", Sequence: "TTTTAAAACC"},
		{ID: "seq3", Sequence: "ATGCATGCAT"},
	})
}

func TestCountDistinctKeys(t *testing.T) {
	assert.Equal(t, 3, sampleTable().CountDistinctKeys())
	assert.Equal(t, 0, New(nil).CountDistinctKeys())
}

func TestOptions(t *testing.T) {
	opts := sampleTable().Options()

	require.Len(t, opts, 4)
	assert.Equal(t, Option{Label: "seq1 - ATGCATGCAT", Value: "ATGCATGCAT"}, opts[0])
	assert.Equal(t, Option{Label: "seq2 - GGGGCCCCAA", Value: "GGGGCCCCAA"}, opts[1])
	// duplicate values are kept as separate options
	assert.Equal(t, Option{Label: "seq3 - ATGCATGCAT", Value: "ATGCATGCAT"}, opts[3])
}

func TestValues(t *testing.T) {
	assert.Equal(t,
		[]string{"ATGCATGCAT", "GGGGCCCCAA", "TTTTAAAACC", "ATGCATGCAT"},
		sampleTable().Values())
}

func TestLookupByValueFirstMatchWins(t *testing.T) {
	rec, err := sampleTable().LookupByValue("ATGCATGCAT")
	require.NoError(t, err)

	assert.Equal(t, "seq1", rec.ID)
}

func TestLookupByValueNotFound(t *testing.T) {
	tests := []struct {
		name  string
		table *Table
		value string
	}{
		{"absent value", sampleTable(), "CCCC"},
		{"empty table", New(nil), "ATGC"},
		{"nil table", nil, "ATGC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.table.LookupByValue(tt.value)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNotFound))

			var nf *sequence.NotFoundError
			require.True(t, errors.As(err, &nf))
			assert.Equal(t, tt.value, nf.Value)
		})
	}
}

func TestNewCopiesRecords(t *testing.T) {
	records := []sequence.Record{{ID: "a", Sequence: "ATGC"}}
	tbl := New(records)
	records[0].Sequence = "GGGG"

	assert.True(t, tbl.HasValue("ATGC"))
	assert.False(t, tbl.HasValue("GGGG"))

	out := tbl.Records()
	out[0].Sequence = "CCCC"
	assert.True(t, tbl.HasValue("ATGC"))
}

func TestAt(t *testing.T) {
	tbl := sampleTable()

	rec, ok := tbl.At(1)
	require.True(t, ok)
	assert.Equal(t, "seq2", rec.ID)

	_, ok = tbl.At(4)
	assert.False(t, ok)
	_, ok = tbl.At(-1)
	assert.False(t, ok)
}

func TestNilTable(t *testing.T) {
	var tbl *Table

	assert.Equal(t, 0, tbl.Len())
	assert.True(t, tbl.IsEmpty())
	assert.Empty(t, tbl.Options())
	assert.Equal(t, 0, tbl.CountDistinctKeys())
}
