package engine

import (
	"context"
	"fmt"
	"io"
	"strings"

	"csv-pump/internal/dialect"
)

// Snapshot is every row of a table at the time it was read. Row order is
// whatever the store returned.
type Snapshot struct {
	Table   string
	Columns []string
	Rows    [][]interface{}
}

// Inspect reads back every row of table. It never writes.
func Inspect(ctx context.Context, db DB, d dialect.Dialect, table string) (*Snapshot, error) {
	rows, err := db.QueryxContext(ctx, d.SelectAllQuery(table))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}

	snap := &Snapshot{Table: table, Columns: cols}
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", table, err)
		}
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		snap.Rows = append(snap.Rows, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", table, err)
	}
	return snap, nil
}

// Dump writes the snapshot as one tuple per row.
func (s *Snapshot) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\nTable: %s\nRows:\n", s.Table); err != nil {
		return err
	}
	for _, row := range s.Rows {
		if _, err := fmt.Fprintln(w, formatRow(row)); err != nil {
			return err
		}
	}
	return nil
}

func formatRow(row []interface{}) string {
	parts := make([]string, len(row))
	for i, v := range row {
		switch val := v.(type) {
		case nil:
			parts[i] = "NULL"
		case string:
			parts[i] = "'" + strings.ReplaceAll(val, "'", "\\'") + "'"
		default:
			parts[i] = fmt.Sprintf("%v", val)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
