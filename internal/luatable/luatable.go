// Package luatable resolves cell text to typed values and renders rows as a
// Lua table literal suitable for dofile.
package luatable

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/csv2lua/pkg/types"
)

// rowIndent prefixes every row literal inside the table body.
const rowIndent = "  "

// Resolve infers the value of a single cell. Text that parses as a signed
// base-10 64-bit integer becomes an integer; anything else, including digit
// runs outside the int64 range, stays text. Surrounding whitespace is not
// trimmed, so " 36" stays text.
func Resolve(text string) types.Value {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return types.Text(text)
	}
	return types.Integer(n)
}

// BuildRow pairs each header field with the cell at the same position.
// Cells beyond the header are ignored. A record with fewer cells than the
// header returns a *types.RecordShapeError for the given line.
func BuildRow(header types.Header, record types.Record, line int) (types.Row, error) {
	if len(record) < len(header) {
		return nil, &types.RecordShapeError{
			Line:   line,
			Cells:  len(record),
			Fields: len(header),
		}
	}

	row := make(types.Row, len(header))
	for i, name := range header {
		row[i] = types.Field{Name: name, Value: Resolve(record[i])}
	}
	return row, nil
}

// FormatValue returns the literal for v: integers unquoted in canonical
// decimal form, text wrapped in double quotes with no escaping.
func FormatValue(v types.Value) string {
	if v.Kind == types.KindInteger {
		return strconv.FormatInt(v.Int, 10)
	}
	return `"` + v.Text + `"`
}

// FormatRow returns the row literal, e.g. {name="Ada", age=36}.
func FormatRow(row types.Row) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range row {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteByte('=')
		b.WriteString(FormatValue(f.Value))
	}
	b.WriteByte('}')
	return b.String()
}

// Render writes the table as `NAME = {\n<rows>\n}\n` with rows joined by
// ",\n". A table with no rows renders an empty line as its body.
func Render(w io.Writer, table types.Table) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(table.Name)
	bw.WriteString(" = {\n")
	for i, row := range table.Rows {
		if i > 0 {
			bw.WriteString(",\n")
		}
		bw.WriteString(rowIndent)
		bw.WriteString(FormatRow(row))
	}
	bw.WriteString("\n}\n")
	return bw.Flush()
}

// RenderString returns the rendered table as a string.
func RenderString(table types.Table) string {
	var b strings.Builder
	// strings.Builder never fails a write.
	_ = Render(&b, table)
	return b.String()
}
