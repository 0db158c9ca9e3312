package engine

import (
	"context"
	"fmt"
	"strings"

	"csv-pump/internal/dialect"
	"csv-pump/internal/source"
)

// Load inserts every record of src into table inside a single transaction and
// returns the number of rows inserted. Each insert uses the record's own
// field names as its column list and binds values by name. Any failure rolls
// the whole transaction back; nothing is skipped or retried.
func Load(ctx context.Context, db DB, d dialect.Dialect, table string, src RecordSource, onRow func()) (int, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin load %s: %w", table, err)
	}
	defer func() {
		if tx != nil {
			tx.Rollback()
		}
	}()

	queries := make(map[string]string)
	inserted := 0

	err = src.Each(func(rec source.Record) error {
		key := strings.Join(rec.Names, "\x00")
		query, ok := queries[key]
		if !ok {
			query = d.NamedInsertQuery(table, rec.Names)
			queries[key] = query
		}

		if _, err := tx.NamedExecContext(ctx, query, rec.Values); err != nil {
			if d.IsDataError(err) {
				return fmt.Errorf("%w: %s line %d: %w", ErrSchemaConflict, table, rec.Line, err)
			}
			return fmt.Errorf("insert into %s line %d: %w", table, rec.Line, err)
		}
		inserted++
		if onRow != nil {
			onRow()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit load of %s: %w", table, err)
	}
	tx = nil

	return inserted, nil
}
