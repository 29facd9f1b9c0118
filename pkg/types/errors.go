package types

import (
	"errors"
	"fmt"
)

// Conversion errors. Every failure returned by the converter wraps one of
// ErrInput, ErrOutput or ErrRecordShape.
var (
	ErrInput           = errors.New("input error")
	ErrOutput          = errors.New("output error")
	ErrRecordShape     = errors.New("malformed record")
	ErrEmptyInput      = fmt.Errorf("%w: no header record", ErrInput)
	ErrGlobalNameEmpty = errors.New("global name must not be empty")
)

// RecordShapeError reports a data record with fewer cells than the header.
// Line is the 1-based line of the record in the input file.
type RecordShapeError struct {
	Line   int
	Cells  int
	Fields int
}

func (e *RecordShapeError) Error() string {
	return fmt.Sprintf("%s: line %d has %d cells, header has %d fields",
		ErrRecordShape, e.Line, e.Cells, e.Fields)
}

// Is reports whether target is ErrRecordShape.
func (e *RecordShapeError) Is(target error) bool {
	return target == ErrRecordShape
}
