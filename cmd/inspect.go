package cmd

import (
	"csv-pump/internal/engine"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [table]...",
	Short: "Print every row of the given tables (default: the configured sources)",
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

		for _, name := range names {
			snap, err := engine.Inspect(cmd.Context(), db, d, name)
			if err != nil {
				return err
			}
			if err := snap.Dump(cmd.OutOrStdout()); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)
}

// tableNames returns args, or the tables of the configured sources when args
// is empty, after the identifier guard.
func tableNames(args []string) ([]string, error) {
	names := args
	if len(names) == 0 {
		files, err := GetSources(nil)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			names = append(names, f.Table)
		}
	}
	for _, n := range names {
		if err := checkTableName(n); err != nil {
			return nil, err
		}
	}
	return names, nil
}
