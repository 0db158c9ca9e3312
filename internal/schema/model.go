package schema

import "errors"

// ErrMalformedInput marks source data that cannot be turned into a table:
// header/row length mismatch, a missing file, or unreadable CSV.
var ErrMalformedInput = errors.New("malformed input")

// DefaultTextLength caps VARCHAR columns inferred as Text.
const DefaultTextLength = 255

// Type is the coarse column type inferred from a sample value.
type Type int

const (
	Text Type = iota
	Integer
	Real
)

func (t Type) String() string {
	switch t {
	case Integer:
		return "Integer"
	case Real:
		return "Real"
	default:
		return "Text"
	}
}

type Table struct {
	Name    string
	Columns []*Column
}

type Column struct {
	Name string
	Type Type
}

// LoadResult is the per-table line of the load report.
type LoadResult struct {
	TableName string
	Inserted  int
	Actual    int
	Status    string
	ErrorMsg  string
}
