// Package source reads delimited text files into header rows, sample rows and
// name-keyed records.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"csv-pump/internal/schema"
)

// Record is one data row keyed by header field name. Names keeps the header
// order so the loader can emit a stable column list.
type Record struct {
	Line   int
	Names  []string
	Values map[string]interface{}
}

// File is a CSV file on disk destined for a single table.
type File struct {
	Table string
	Path  string
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	// Every record must match the header width.
	cr.FieldsPerRecord = 0
	return cr
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", schema.ErrMalformedInput, err)
	}
	return f, nil
}

func readHeader(cr *csv.Reader, path string) ([]string, error) {
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s: empty file", schema.ErrMalformedInput, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read header: %v", schema.ErrMalformedInput, path, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	return header, nil
}

// ReadHeaderAndSample returns the header row and the first data row.
func ReadHeaderAndSample(path string) ([]string, []string, error) {
	f, err := open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	cr := newReader(f)
	cr.FieldsPerRecord = -1 // width is checked by the schema builder
	header, err := readHeader(cr, path)
	if err != nil {
		return nil, nil, err
	}
	sample, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("%w: %s: no sample row after header", schema.ErrMalformedInput, path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: read sample row: %v", schema.ErrMalformedInput, path, err)
	}
	return header, sample, nil
}

// ReadAll returns the header and every data row.
func ReadAll(path string) ([]string, [][]string, error) {
	var rows [][]string
	header, err := Each(path, func(rec Record) error {
		row := make([]string, len(rec.Names))
		for i, n := range rec.Names {
			row[i], _ = rec.Values[n].(string)
		}
		rows = append(rows, row)
		return nil
	})
	return header, rows, err
}

// Each streams every data row of path to fn as a Record and returns the
// header. A row whose width differs from the header aborts with
// ErrMalformedInput. An error from fn stops the scan and is returned as is.
func Each(path string, fn func(Record) error) ([]string, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := newReader(f)
	header, err := readHeader(cr, path)
	if err != nil {
		return nil, err
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return header, nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return header, fmt.Errorf("%w: %s: line %d: %v", schema.ErrMalformedInput, path, perr.Line, perr.Err)
			}
			return header, fmt.Errorf("%w: %s: %v", schema.ErrMalformedInput, path, err)
		}

		line, _ := cr.FieldPos(0)
		values := make(map[string]interface{}, len(header))
		for i, name := range header {
			values[name] = rec[i]
		}
		if err := fn(Record{Line: line, Names: header, Values: values}); err != nil {
			return header, err
		}
	}
}

// CountRows returns the number of data rows (excluding the header).
func CountRows(path string) (int, error) {
	n := 0
	_, err := Each(path, func(Record) error {
		n++
		return nil
	})
	return n, err
}

// Each re-reads the file from disk and streams its records.
func (f File) Each(fn func(Record) error) error {
	_, err := Each(f.Path, fn)
	return err
}

// Records is an in-memory record set.
type Records []Record

func (rs Records) Each(fn func(Record) error) error {
	for _, r := range rs {
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

// NewRecords turns a header and positional rows into name-keyed records.
// Line numbers start at 2 to match the file layout.
func NewRecords(header []string, rows [][]string) (Records, error) {
	out := make(Records, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d",
				schema.ErrMalformedInput, i+1, len(row), len(header))
		}
		values := make(map[string]interface{}, len(header))
		for c, name := range header {
			values[name] = row[c]
		}
		out = append(out, Record{Line: i + 2, Names: header, Values: values})
	}
	return out, nil
}
