// Package csvread parses comma-delimited input into records, keeping the
// input line of each record for error reporting.
package csvread

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/mesh-intelligence/csv2lua/pkg/types"
)

// Row is a parsed record and the 1-based input line it starts on.
type Row struct {
	Line  int
	Cells types.Record
}

// ReadFile opens path and parses every record in it. The file is closed
// before ReadFile returns. All failures wrap types.ErrInput; an input with
// no records returns types.ErrEmptyInput.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", types.ErrInput, path, err)
	}
	defer f.Close()

	rows, err := ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

// ReadAll parses r with comma separation and standard quoting: a quoted
// field may hold commas and newlines, and "" inside quotes is one quote.
// Quoting is lenient: a quote inside an unquoted field is kept as text, and
// a quoted field left open runs to the end of the input.
// Records may differ in width; shape is checked by the caller. A leading
// byte-order mark is removed, and UTF-16 input with a BOM is decoded to
// UTF-8. Other bytes pass through unchanged.
//
// Blank lines are dropped. They produce no record, so they never reach the
// caller's shape check as a zero-cell row.
func ReadAll(r io.Reader) ([]Row, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.Comma = ','
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrInput, err)
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, Row{Line: line, Cells: types.Record(rec)})
	}

	if len(rows) == 0 {
		return nil, types.ErrEmptyInput
	}
	return rows, nil
}
