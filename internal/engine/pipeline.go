package engine

import (
	"context"
	"fmt"

	"csv-pump/internal/dialect"
	"csv-pump/internal/schema"
	"csv-pump/internal/source"
)

// BuildSchema infers the table definition for f. By default only the header
// and the first data row are read; with scanAll every row is read and column
// types are widened to fit all of them.
func BuildSchema(f source.File, scanAll bool) (*schema.Table, error) {
	if scanAll {
		header, rows, err := source.ReadAll(f.Path)
		if err != nil {
			return nil, err
		}
		return schema.BuildScanned(f.Table, header, rows)
	}

	header, sample, err := source.ReadHeaderAndSample(f.Path)
	if err != nil {
		return nil, err
	}
	return schema.Build(f.Table, header, sample)
}

// Run provisions t and loads src into it. Provisioning commits on its own, so
// a failed load leaves an empty (or previously populated) table behind but
// never a partial load from this run.
func Run(ctx context.Context, db DB, d dialect.Dialect, t *schema.Table, src RecordSource, onRow func()) (schema.LoadResult, error) {
	res := schema.LoadResult{TableName: t.Name}

	if err := Provision(ctx, db, d, t); err != nil {
		return res, err
	}

	before, err := Count(ctx, db, d, t.Name)
	if err != nil {
		return res, err
	}

	inserted, err := Load(ctx, db, d, t.Name, src, onRow)
	if err != nil {
		return res, err
	}
	res.Inserted = inserted

	after, err := Count(ctx, db, d, t.Name)
	if err != nil {
		return res, err
	}
	res.Actual = after - before

	res.Status = "OK"
	if res.Actual != res.Inserted {
		res.Status = "MISMATCH"
		res.ErrorMsg = fmt.Sprintf("inserted %d rows but table grew by %d", res.Inserted, res.Actual)
	}
	return res, nil
}

// Count returns the current row count of table.
func Count(ctx context.Context, db DB, d dialect.Dialect, table string) (int, error) {
	var n int
	if err := db.QueryRowxContext(ctx, d.CountQuery(table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

// Verify re-counts every loaded table after the whole run and reports tables
// holding fewer rows than were inserted.
func Verify(ctx context.Context, db DB, d dialect.Dialect, results []schema.LoadResult) []schema.LoadResult {
	verified := make([]schema.LoadResult, 0, len(results))
	for _, res := range results {
		current, err := Count(ctx, db, d, res.TableName)

		status := res.Status
		if err != nil {
			status = fmt.Sprintf("VERIFY_FAIL: %v", err)
		} else if current < res.Inserted {
			status = fmt.Sprintf("PARTIAL: %d/%d", current, res.Inserted)
		} else if status == "OK" {
			status = "VERIFIED_OK"
		}

		res.Status = status
		verified = append(verified, res)
	}
	return verified
}
