package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/aria-lang/seqanalyser-go/internal/sequence"
	"github.com/aria-lang/seqanalyser-go/internal/table"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// parseCSV reads a header row and then one record per row from the first
// two columns. Values are kept verbatim.
func parseCSV(data []byte) (*table.Table, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("file is not valid UTF-8")
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))

	header, err := r.Read()
	if err == io.EOF {
		return nil, ErrNoRecords
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < 2 {
		return nil, ErrMissingColumns
	}

	records := make([]sequence.Record, 0)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(records)+1, err)
		}
		records = append(records, sequence.NewRecord(row[0], row[1]))
	}

	return table.New(records), nil
}
