package dialect

import (
	"fmt"
	"strings"
)

// Options tune the column types a Dialect emits.
type Options struct {
	// TextLength bounds VARCHAR columns; zero or less selects the default.
	TextLength int
	// BigIntegers maps Integer columns to a 64-bit type.
	BigIntegers bool
}

// GetDialect returns the Dialect for a database/sql driver name.
func GetDialect(driver string, opts Options) (Dialect, error) {
	switch strings.ToLower(driver) {
	case "postgres", "postgresql", "":
		d := NewPostgres(opts.TextLength)
		d.BigIntegers = opts.BigIntegers
		return d, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q (only postgres is supported)", driver)
	}
}

// Ensure interface implementation
var _ Dialect = (*PostgresDialect)(nil)
