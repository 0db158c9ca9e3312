package engine

import (
	"context"
	"fmt"
	"log"

	"csv-pump/internal/dialect"
	"csv-pump/internal/schema"
)

// Provision issues one CREATE TABLE IF NOT EXISTS for t outside any
// transaction, so it commits on its own. An existing table is left untouched
// even if its columns differ from t.
func Provision(ctx context.Context, db DB, d dialect.Dialect, t *schema.Table) error {
	if _, err := db.ExecContext(ctx, d.CreateTableQuery(t)); err != nil {
		return fmt.Errorf("create table %s: %w", t.Name, err)
	}
	log.Printf("Table %s created successfully.", t.Name)
	return nil
}
