package cmd

import (
	"fmt"
	"log"
	"time"

	"csv-pump/internal/engine"
	"csv-pump/internal/schema"
	"csv-pump/internal/source"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	dryRun     bool
	showTables bool
)

var loadCmd = &cobra.Command{
	Use:   "load [table=path | path]...",
	Short: "Create tables from CSV files and bulk-load them",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		files, err := GetSources(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no sources to load")
		}

		config, d, err := resolveActive()
		if err != nil {
			return err
		}

		scan := viper.GetBool("settings.scan_all")
		strict := viper.GetBool("settings.strict_identifiers")

		// 1. Infer every schema up front so bad headers fail before any DDL.
		tables := make([]*schema.Table, len(files))
		for i, f := range files {
			t, err := engine.BuildSchema(f, scan)
			if err != nil {
				return fmt.Errorf("infer schema for %s: %w", f.Path, err)
			}
			if strict {
				if err := schema.CheckIdentifiers(t); err != nil {
					return err
				}
			}
			tables[i] = t
		}

		// Dry Run
		if dryRun {
			log.Println("[SIMULATION] Dry-Run Mode Active: No data will be written.")
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "🔍 Inferred Schemas:\n")
			for i, t := range tables {
				fmt.Fprintf(out, "[%02d] %s <- %s\n", i+1, t.Name, files[i].Path)
				fmt.Fprintf(out, "     %s;\n", d.CreateTableQuery(t))
			}
			return nil
		}

		db, err := connect(ctx, config)
		if err != nil {
			return err
		}
		defer db.Close()

		log.Printf("Loading %d source file(s)...", len(files))
		start := time.Now()

		// 2. Provision + load, one file at a time.
		var results []schema.LoadResult
		uiprogress.Start()
		for i, f := range files {
			total, err := source.CountRows(f.Path)
			if err != nil {
				uiprogress.Stop()
				return fmt.Errorf("read %s: %w", f.Path, err)
			}

			name := f.Table
			bar := uiprogress.AddBar(max(total, 1)).AppendCompleted().PrependElapsed()
			bar.PrependFunc(func(b *uiprogress.Bar) string {
				return fmt.Sprintf("%-16s", name)
			})

			res, err := engine.Run(ctx, db, d, tables[i], f, func() {
				bar.Incr()
			})
			if err != nil {
				uiprogress.Stop()
				return fmt.Errorf("load %s from %s: %w", f.Table, f.Path, err)
			}
			results = append(results, res)
		}
		uiprogress.Stop()

		// 3. Verification Step
		verifiedResults := engine.Verify(ctx, db, d, results)

		elapsed := time.Since(start)

		// 4. Final Report
		fmt.Println("\n📊 Summary Report (Load Order):")
		total := 0
		for i, r := range verifiedResults {
			icon := "✓"
			if r.Status != "VERIFIED_OK" {
				icon = "!"
			}
			statusDisplay := r.Status
			if statusDisplay == "VERIFIED_OK" {
				statusDisplay = "OK (Verified)"
			}

			fmt.Printf("[%s] [%02d/%02d] %-20s : %d rows - %s\n",
				icon, i+1, len(verifiedResults), r.TableName, r.Inserted, statusDisplay)
			if r.ErrorMsg != "" {
				fmt.Printf("    └ Error: %s\n", r.ErrorMsg)
			}
			total += r.Inserted
		}
		fmt.Println("--------------------------------------------------")
		fmt.Printf("Total Rows: %d\n", total)
		log.Printf("Load Done! Time Elapsed: %s", elapsed)

		// 5. Display table information
		if showTables {
			for _, t := range tables {
				snap, err := engine.Inspect(ctx, db, d, t.Name)
				if err != nil {
					return err
				}
				if err := snap.Dump(cmd.OutOrStdout()); err != nil {
					return err
				}
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(loadCmd)

	// CLI Flags
	loadCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the inferred CREATE TABLE statements without touching the DB")
	loadCmd.Flags().BoolVar(&showTables, "inspect", true, "Dump every loaded table after the run")

	// Bound to viper in bindFlags.
	loadCmd.Flags().Bool("scan-all", false, "Infer column types from every row instead of the first data row")
	loadCmd.Flags().Int("text-length", schema.DefaultTextLength, "VARCHAR length for Text columns")
	loadCmd.Flags().Bool("strict", true, "Reject table/column names that are not plain SQL identifiers")
	loadCmd.Flags().Bool("big-integers", false, "Create Integer columns as BIGINT instead of INTEGER")
}
