// Package convert turns a CSV file into a Lua table file in one pass:
// parse rows, infer cell types, render the literal, write the output.
package convert

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/mesh-intelligence/csv2lua/internal/csvread"
	"github.com/mesh-intelligence/csv2lua/internal/luatable"
	"github.com/mesh-intelligence/csv2lua/pkg/types"
)

// Result summarizes a finished conversion.
type Result struct {
	Rows    int
	Columns int
	Bytes   int
}

// Option configures a conversion.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger logs each data record as it is converted, followed by a
// summary line. A nil logger disables diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Convert reads inputPath, treats the first record as the header and writes
// the table literal assigned to globalName to outputPath, replacing any
// existing file. A symlinked outputPath keeps the link and updates its
// target; device paths such as /dev/stdout are written in place.
func Convert(inputPath, outputPath, globalName string, opts ...Option) error {
	_, err := ConvertResult(inputPath, outputPath, globalName, opts...)
	return err
}

// ConvertResult is Convert that also reports what was written.
func ConvertResult(inputPath, outputPath, globalName string, opts ...Option) (Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logf := func(format string, args ...any) {
		if o.logger != nil {
			o.logger.Printf(format, args...)
		}
	}

	if globalName == "" {
		return Result{}, types.ErrGlobalNameEmpty
	}

	records, err := csvread.ReadFile(inputPath)
	if err != nil {
		return Result{}, err
	}

	table, err := BuildTable(records, globalName, logf)
	if err != nil {
		return Result{}, fmt.Errorf("converting %s: %w", inputPath, err)
	}

	var buf bytes.Buffer
	if err := luatable.Render(&buf, table); err != nil {
		return Result{}, fmt.Errorf("%w: rendering table: %w", types.ErrOutput, err)
	}

	if err := writeOutput(outputPath, buf.Bytes()); err != nil {
		return Result{}, err
	}

	res := Result{
		Rows:    len(table.Rows),
		Columns: len(records[0].Cells),
		Bytes:   buf.Len(),
	}
	logf("wrote %s: %d rows, %d columns, %d bytes", outputPath, res.Rows, res.Columns, res.Bytes)
	return res, nil
}

// BuildTable converts parsed records into a named table. records[0] is the
// header; every later record becomes one row. logf may be nil.
func BuildTable(records []csvread.Row, globalName string, logf func(string, ...any)) (types.Table, error) {
	if len(records) == 0 {
		return types.Table{}, types.ErrEmptyInput
	}

	header := types.Header(records[0].Cells)
	table := types.Table{
		Name: globalName,
		Rows: make([]types.Row, 0, len(records)-1),
	}
	for _, rec := range records[1:] {
		if logf != nil {
			logf("line %d: [%s]", rec.Line, strings.Join(rec.Cells, ", "))
		}
		row, err := luatable.BuildRow(header, rec.Cells, rec.Line)
		if err != nil {
			return types.Table{}, err
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

