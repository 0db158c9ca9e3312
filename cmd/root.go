package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"csv-pump/internal/engine"
	"csv-pump/internal/schema"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	dsn     string
)

var RootCmd = &cobra.Command{
	Use:   "csv-pump",
	Short: "Load CSV files into PostgreSQL tables",
	Long: `
CSV PUMP - infer a table from a CSV sample row, create it, and bulk-load the file.

Each source file becomes one table. Column types come from the first data row
(Integer, Real or Text); every row is then inserted in a single transaction.
`,
	SilenceUsage: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./csv-pump.yaml)")
	RootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Database Source Name (DSN), overrides the databases list")

	setDefaults()
}

// bindFlags wires flags into viper (Flag > Env > Config > Default). It runs
// from initConfig, after every subcommand has registered its flags.
func bindFlags() {
	viper.BindPFlag("database.dsn", RootCmd.PersistentFlags().Lookup("dsn"))

	viper.BindPFlag("settings.scan_all", loadCmd.Flags().Lookup("scan-all"))
	viper.BindPFlag("settings.text_length", loadCmd.Flags().Lookup("text-length"))
	viper.BindPFlag("settings.strict_identifiers", loadCmd.Flags().Lookup("strict"))
	viper.BindPFlag("settings.big_integers", loadCmd.Flags().Lookup("big-integers"))

	viper.BindPFlag("settings.sample_rows", sampleCmd.Flags().Lookup("rows"))
	viper.BindPFlag("settings.data_dir", sampleCmd.Flags().Lookup("dir"))
}

func setDefaults() {
	viper.SetDefault("settings.text_length", schema.DefaultTextLength)
	viper.SetDefault("settings.strict_identifiers", true)
	viper.SetDefault("settings.scan_all", false)
	viper.SetDefault("settings.big_integers", false)
	viper.SetDefault("settings.data_dir", "data")
	viper.SetDefault("settings.sample_rows", 25)
	viper.SetDefault("settings.datasets", engine.DefaultDatasets)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	bindFlags()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			exePath := filepath.Dir(ex)
			viper.AddConfigPath(exePath)
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("csv-pump")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CSVPUMP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
