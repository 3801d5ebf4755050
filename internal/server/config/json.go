package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/dilbilim/internal/flagx"
	"github.com/dmitrijs2005/dilbilim/internal/timex"
)

// JSONConfig is the on-disk shape of the config file. Only keys present in
// the file override the current values.
type JSONConfig struct {
	EndpointAddrHTTP      *string         `json:"endpoint_addr_http"`
	DatabaseDriver        *string         `json:"database_driver"`
	DatabaseDSN           *string         `json:"database_dsn"`
	PasswordHashMemoryKiB *uint32         `json:"password_hash_memory_kib"`
	ShutdownTimeout       *timex.Duration `json:"shutdown_timeout"`
	LogLevel              *string         `json:"log_level"`
}

// parseJSON overlays values from the file named by -c/-config. No flag means
// nothing to load.
func parseJSON(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c := &JSONConfig{}
	if err := json.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if c.EndpointAddrHTTP != nil {
		config.EndpointAddrHTTP = *c.EndpointAddrHTTP
	}
	if c.DatabaseDriver != nil {
		config.DatabaseDriver = *c.DatabaseDriver
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.PasswordHashMemoryKiB != nil {
		config.PasswordHashMemoryKiB = *c.PasswordHashMemoryKiB
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
	return nil
}
