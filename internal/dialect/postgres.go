package dialect

import (
	"errors"
	"fmt"
	"strings"

	"csv-pump/internal/schema"

	"github.com/lib/pq"
)

type PostgresDialect struct {
	TextLength  int
	BigIntegers bool
}

func NewPostgres(textLength int) *PostgresDialect {
	if textLength <= 0 {
		textLength = schema.DefaultTextLength
	}
	return &PostgresDialect{TextLength: textLength}
}

func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

func (d *PostgresDialect) ColumnType(t schema.Type) string {
	switch t {
	case schema.Integer:
		if d.BigIntegers {
			return "BIGINT"
		}
		return "INTEGER"
	case schema.Real:
		return "REAL"
	default:
		return fmt.Sprintf("VARCHAR(%d)", d.TextLength)
	}
}

// CreateTableQuery renders a single idempotent CREATE statement. Names are
// spliced in unquoted.
func (d *PostgresDialect) CreateTableQuery(t *schema.Table) string {
	defs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		defs[i] = c.Name + " " + d.ColumnType(c.Type)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", t.Name, strings.Join(defs, ", "))
}

func (d *PostgresDialect) NamedInsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), NamedPlaceholder(cols))
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), vals)
}

func (d *PostgresDialect) SelectAllQuery(table string) string {
	return fmt.Sprintf("SELECT * FROM %s", table)
}

func (d *PostgresDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
}

func (d *PostgresDialect) DeleteAllQuery(table string) string {
	return fmt.Sprintf("DELETE FROM %s", table)
}

// IsDataError matches SQLSTATE class 22 (data exception), e.g. 22P02
// invalid_text_representation or 22001 string_data_right_truncation.
func (d *PostgresDialect) IsDataError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "22"
	}
	return false
}
