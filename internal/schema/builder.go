package schema

import "fmt"

// Build pairs each header name with the type inferred from the value at the
// same position of the sample row. Only the sample row is consulted, so a
// column whose later values disagree with the sample is not detected here.
func Build(name string, header, sample []string) (*Table, error) {
	if len(header) != len(sample) {
		return nil, fmt.Errorf("%w: table %s: header has %d fields, sample row has %d",
			ErrMalformedInput, name, len(header), len(sample))
	}
	return newTable(name, header, InferTypes(sample)), nil
}

// BuildScanned infers column types from every row instead of just the first,
// widening Integer -> Real -> Text whenever a later row disagrees.
func BuildScanned(name string, header []string, rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: table %s: no data rows", ErrMalformedInput, name)
	}

	var types []Type
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: table %s: row %d has %d fields, header has %d",
				ErrMalformedInput, name, i+1, len(row), len(header))
		}
		rowTypes := InferTypes(row)
		if types == nil {
			types = rowTypes
			continue
		}
		for c := range types {
			types[c] = Widen(types[c], rowTypes[c])
		}
	}
	return newTable(name, header, types), nil
}

func newTable(name string, header []string, types []Type) *Table {
	t := &Table{Name: name, Columns: make([]*Column, 0, len(header))}
	for i, h := range header {
		t.Columns = append(t.Columns, &Column{Name: h, Type: types[i]})
	}
	return t
}
