package cmd

import (
	"context"
	"fmt"
	"log"

	"csv-pump/internal/dialect"
	"csv-pump/internal/engine"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [table]...",
	Short: "Delete all rows from the given tables (default: the configured sources)",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := tableNames(args)
		if err != nil {
			return err
		}

		db, d, _, err := openActiveDB(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		return cleanTables(cmd.Context(), db, d, names)
	},
}

func init() {
	RootCmd.AddCommand(cleanCmd)
}

// cleanTables empties tables in reverse load order inside one transaction.
// Tables are kept; only their rows go.
func cleanTables(ctx context.Context, db engine.DB, d dialect.Dialect, tables []string) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if tx != nil {
			tx.Rollback()
		}
	}()

	total := len(tables)
	count := 0
	for i := len(tables) - 1; i >= 0; i-- {
		count++
		res, err := tx.ExecContext(ctx, d.DeleteAllQuery(tables[i]))
		if err != nil {
			return fmt.Errorf("failed to clean %s: %w", tables[i], err)
		}
		n, _ := res.RowsAffected()
		log.Printf("Cleaned %s (%d rows) [%d/%d]", tables[i], n, count, total)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cleaning transaction: %w", err)
	}
	tx = nil

	log.Println("Tables Cleaned Successfully!")
	return nil
}
