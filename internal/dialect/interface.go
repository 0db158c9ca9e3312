package dialect

import "csv-pump/internal/schema"

// Dialect abstracts database-specific SQL generation.
type Dialect interface {
	// Driver name registered with database/sql.
	DriverName() string

	// DDL
	ColumnType(t schema.Type) string
	CreateTableQuery(t *schema.Table) string

	// DML / Queries
	NamedInsertQuery(table string, cols []string) string
	SelectAllQuery(table string) string
	CountQuery(table string) string
	DeleteAllQuery(table string) string

	// IsDataError reports whether err is the store rejecting a value for a
	// column's type (bad numeric text, value too long, ...).
	IsDataError(err error) bool
}
