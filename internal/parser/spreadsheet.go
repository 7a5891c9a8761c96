package parser

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/aria-lang/seqanalyser-go/internal/sequence"
	"github.com/aria-lang/seqanalyser-go/internal/table"
)

// parseSpreadsheet reads the first sheet of a workbook with the same
// header-plus-two-columns contract as CSV. Blank rows are skipped. GetRows
// drops trailing empty cells, so a row with only an identifier has an empty
// sequence value, as the same row does in CSV.
func parseSpreadsheet(data []byte) (*table.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrNoRecords
	}
	if len(rows[0]) < 2 {
		return nil, ErrMissingColumns
	}

	records := make([]sequence.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		if len(row) < 2 {
			row = append(row, "")
		}
		records = append(records, sequence.NewRecord(row[0], row[1]))
	}

	return table.New(records), nil
}
