package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/dilbilim/internal/flagx"
)

// parseFlags overlays selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":5000")
//	-t string   database driver (sqlite, pgx)
//	-d string   database DSN or SQLite file path
//	-m uint     argon2id memory cost, KiB
//	-g int      shutdown grace period, seconds
//	-l string   log level
//
// Other arguments are filtered out first so the admin CLI can share the
// process arguments with its own subcommand flags.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-d", "-m", "-g", "-l"})

	fs := flag.NewFlagSet("dilbilim", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "t", config.DatabaseDriver, "database driver (sqlite, pgx)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	memory := fs.Uint("m", uint(config.PasswordHashMemoryKiB), "password hash memory (KiB)")
	shutdown := fs.Int("g", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// numeric flags are converted only when given, so a sub-second JSON
	// timeout is not truncated by the default
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "m":
			config.PasswordHashMemoryKiB = uint32(*memory)
		case "g":
			config.ShutdownTimeout = time.Duration(*shutdown) * time.Second
		}
	})
	return nil
}
