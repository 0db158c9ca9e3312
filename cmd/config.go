package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"csv-pump/internal/database"
	"csv-pump/internal/dialect"
	"csv-pump/internal/schema"
	"csv-pump/internal/source"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

type SourceConfig struct {
	Table string `mapstructure:"table"`
	Path  string `mapstructure:"path"`
}

// GetActiveDBConfig returns the database configuration for this run.
// Precedence: --dsn flag > the single active entry of "databases" > lab defaults.
func GetActiveDBConfig() (*database.Config, error) {
	if connStr := viper.GetString("database.dsn"); connStr != "" {
		return &database.Config{
			Name:   "CLI Wrapper",
			Driver: viper.GetString("database.driver"),
			DSN:    connStr,
			Active: true,
		}, nil
	}

	var configs []database.Config

	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	if len(configs) == 0 {
		cfg := database.Config{Name: "default", Active: true}.WithDefaults()
		return &cfg, nil
	}

	var activeConfig *database.Config
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active database found in config (set active: true)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}

	return activeConfig, nil
}

// GetSources resolves the files to load.
// Precedence: positional args > "sources" config > default datasets in data_dir.
func GetSources(args []string) ([]source.File, error) {
	if len(args) > 0 {
		files := make([]source.File, 0, len(args))
		for _, a := range args {
			f, err := parseSourceArg(a)
			if err != nil {
				return nil, err
			}
			files = append(files, f)
		}
		return files, nil
	}

	var configs []SourceConfig
	if err := viper.UnmarshalKey("sources", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse sources config: %w", err)
	}
	if len(configs) > 0 {
		files := make([]source.File, 0, len(configs))
		for _, c := range configs {
			if c.Path == "" {
				return nil, fmt.Errorf("source %q has no path", c.Table)
			}
			table := c.Table
			if table == "" {
				table = tableFromPath(c.Path)
			}
			files = append(files, source.File{Table: table, Path: c.Path})
		}
		return files, nil
	}

	dir := viper.GetString("settings.data_dir")
	var files []source.File
	for _, name := range viper.GetStringSlice("settings.datasets") {
		files = append(files, source.File{Table: name, Path: filepath.Join(dir, name+".csv")})
	}
	return files, nil
}

// parseSourceArg accepts "table=path" or a bare path named after its file.
func parseSourceArg(arg string) (source.File, error) {
	table, path, found := strings.Cut(arg, "=")
	if !found {
		path = arg
		table = tableFromPath(arg)
	}
	if table == "" || path == "" {
		return source.File{}, fmt.Errorf("invalid source %q (want table=path or path)", arg)
	}
	return source.File{Table: table, Path: path}, nil
}

func tableFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// checkTableName applies the strict_identifiers guard to a bare table name.
func checkTableName(name string) error {
	if viper.GetBool("settings.strict_identifiers") && !schema.ValidIdentifier(name) {
		return fmt.Errorf("%w: invalid table name %q", schema.ErrMalformedInput, name)
	}
	return nil
}

func activeDialect(cfg *database.Config) (dialect.Dialect, error) {
	return dialect.GetDialect(cfg.Driver, dialect.Options{
		TextLength:  viper.GetInt("settings.text_length"),
		BigIntegers: viper.GetBool("settings.big_integers"),
	})
}

// resolveActive picks the active database entry and its dialect without
// connecting.
func resolveActive() (*database.Config, dialect.Dialect, error) {
	cfg, err := GetActiveDBConfig()
	if err != nil {
		return nil, nil, err
	}
	d, err := activeDialect(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, d, nil
}

// connect opens cfg. The caller closes the returned handle.
func connect(ctx context.Context, cfg *database.Config) (*sqlx.DB, error) {
	db, err := database.Open(ctx, *cfg)
	if err != nil {
		return nil, err
	}
	fmt.Printf("🦅 Connected to %s via %s (%s)\n", cfg.Name, cfg.DriverName(), cfg.Redacted())
	return db, nil
}

// openActiveDB resolves the active config and connects. The caller closes
// the returned handle.
func openActiveDB(ctx context.Context) (*sqlx.DB, dialect.Dialect, *database.Config, error) {
	cfg, d, err := resolveActive()
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := connect(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return db, d, cfg, nil
}
