// Package config handles configuration for the dilbilim server, layering
// defaults, an optional JSON file, environment variables and command-line
// flags (in increasing order of precedence).
package config

import (
	"time"

	"github.com/dmitrijs2005/dilbilim/internal/cryptox"
)

// Config holds runtime settings for the server and the admin CLI.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP API.
//   - DatabaseDriver: "sqlite" (default) or "pgx"/"postgres".
//   - DatabaseDSN: SQLite file path or PostgreSQL DSN.
//   - PasswordHashMemoryKiB: argon2id memory cost per password hash.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrHTTP      string        `env:"DILBILIM_ADDRESS"`
	DatabaseDriver        string        `env:"DILBILIM_DATABASE_DRIVER"`
	DatabaseDSN           string        `env:"DILBILIM_DATABASE_DSN"`
	PasswordHashMemoryKiB uint32        `env:"DILBILIM_PASSWORD_HASH_MEMORY"`
	ShutdownTimeout       time.Duration `env:"DILBILIM_SHUTDOWN_TIMEOUT"`
	LogLevel              string        `env:"DILBILIM_LOG_LEVEL"`
}

// LoadDefaults populates Config with development defaults: a local SQLite
// database in the working directory.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5000"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "dilbilim.db"
	c.PasswordHashMemoryKiB = cryptox.DefaultMemoryKiB
	c.ShutdownTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config, then DILBILIM_* environment variables, then flags. args are the
// process arguments without the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
