// Package database acquires the single connection a load run works against.
package database

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// ErrStoreUnavailable marks failures to reach the database at all.
var ErrStoreUnavailable = errors.New("store unavailable")

// Config describes one database entry. DSN wins when set; otherwise the
// connection string is assembled from the discrete fields.
type Config struct {
	Name     string `mapstructure:"name"`
	Driver   string `mapstructure:"driver"`
	DSN      string `mapstructure:"dsn"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
	Active   bool   `mapstructure:"active"`
}

// driverAliases maps accepted config spellings to the name lib/pq registers.
var driverAliases = map[string]string{
	"":           "postgres",
	"postgres":   "postgres",
	"postgresql": "postgres",
}

// passwordKV matches the password entry of a key=value DSN, quoted or not.
var passwordKV = regexp.MustCompile(`(?i)(\bpassword\s*=\s*)('(?:[^'\\]|\\.)*'|\S+)`)

// Defaults used by the lab environment (a "postgres" compose service).
const (
	DefaultDriver = "postgres"
	DefaultHost   = "postgres"
	DefaultPort   = 5432
	DefaultName   = "postgres"
)

// WithDefaults fills empty fields with the lab defaults.
func (c Config) WithDefaults() Config {
	if c.Driver == "" {
		c.Driver = DefaultDriver
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Database == "" {
		c.Database = DefaultName
	}
	if c.User == "" {
		c.User = DefaultName
	}
	if c.Password == "" {
		c.Password = DefaultName
	}
	if c.SSLMode == "" {
		c.SSLMode = "disable"
	}
	return c
}

// ConnString returns the DSN handed to the driver.
func (c Config) ConnString() string {
	if c.DSN != "" {
		return c.DSN
	}
	c = c.WithDefaults()
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Database,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

// DriverName returns the database/sql driver to open, resolving aliases.
// Unknown names are passed through so sql.Open reports them.
func (c Config) DriverName() string {
	if name, ok := driverAliases[strings.ToLower(c.Driver)]; ok {
		return name
	}
	return c.Driver
}

// Redacted is ConnString with the password masked, for log lines. Both URL
// and key=value DSNs are handled.
func (c Config) Redacted() string {
	conn := c.ConnString()
	if strings.HasPrefix(conn, "postgres://") || strings.HasPrefix(conn, "postgresql://") {
		u, err := url.Parse(conn)
		if err != nil {
			return "xxxxx"
		}
		if q := u.Query(); q.Has("password") {
			q.Set("password", "xxxxx")
			u.RawQuery = q.Encode()
		}
		return u.Redacted()
	}
	return passwordKV.ReplaceAllString(conn, "${1}xxxxx")
}

// Open connects and pings. The caller owns the returned handle and must
// Close it.
func Open(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	db, err := sqlx.Open(cfg.DriverName(), cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open db: %w", ErrStoreUnavailable, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to connect to db: %w", ErrStoreUnavailable, err)
	}
	// One connection for the whole run.
	db.SetMaxOpenConns(1)
	return db, nil
}
