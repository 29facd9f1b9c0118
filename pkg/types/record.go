package types

// Record is one parsed input row: an ordered sequence of text cells.
type Record []string

// Header is the first record of the input. Its fields name the columns and
// fix the field order of every row literal.
type Header []string

// Kind identifies which variant a Value holds.
type Kind int

// Value kinds.
const (
	KindText Kind = iota
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Value is a cell resolved to either an integer or its raw text.
// Int is meaningful only for KindInteger, Text only for KindText.
type Value struct {
	Kind Kind
	Int  int64
	Text string
}

// Integer returns a Value holding n.
func Integer(n int64) Value {
	return Value{Kind: KindInteger, Int: n}
}

// Text returns a Value holding s verbatim.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Field is a named value inside a row literal.
type Field struct {
	Name  string
	Value Value
}

// Row is one row literal. Fields appear in header order.
type Row []Field

// Table is the literal assigned to Name in the generated file.
type Table struct {
	Name string
	Rows []Row
}
