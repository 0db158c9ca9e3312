// Package engine provisions tables from an inferred schema, bulk-loads CSV
// records into them, and reads them back.
package engine

import (
	"context"
	"database/sql"
	"errors"

	"csv-pump/internal/source"

	"github.com/jmoiron/sqlx"
)

// ErrSchemaConflict marks a row whose value the store rejected for the
// column type inferred from the sample row.
var ErrSchemaConflict = errors.New("schema conflict")

// DB is the subset of *sqlx.DB the engine needs.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// RecordSource yields the data rows of one source file, in file order.
type RecordSource interface {
	Each(fn func(source.Record) error) error
}

var (
	_ DB           = (*sqlx.DB)(nil)
	_ RecordSource = source.File{}
	_ RecordSource = source.Records(nil)
)
