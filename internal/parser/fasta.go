package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/aria-lang/seqanalyser-go/internal/sequence"
	"github.com/aria-lang/seqanalyser-go/internal/table"
)

const maxFASTALine = 16 * 1024 * 1024

// parseFASTA reads every record in data. The identifier is the first word of
// the definition line; body lines are trimmed and joined. A record without a
// body is kept with an empty sequence.
func parseFASTA(data []byte) (*table.Table, error) {
	records := make([]sequence.Record, 0)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxFASTALine)

	var (
		inRecord  bool
		currentID string
		bases     strings.Builder
		lineNum   int
	)

	flush := func() {
		if inRecord {
			records = append(records, sequence.NewRecord(currentID, bases.String()))
			bases.Reset()
		}
	}

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			flush()
			inRecord = true
			currentID = ""
			if fields := strings.Fields(line[1:]); len(fields) > 0 {
				currentID = fields[0]
			}
			continue
		}

		if !inRecord {
			return nil, fmt.Errorf("line %d: expected definition line starting with '>'", lineNum)
		}
		bases.WriteString(line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	flush()
	return table.New(records), nil
}
