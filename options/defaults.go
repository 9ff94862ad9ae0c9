package options

import (
	"log/slog"
	"os"

	"github.com/robbyt/go-polycalc/engines/calc/lang"
	"github.com/robbyt/go-polycalc/engines/types"
)

// DefaultConfig initializes a Config with sensible defaults
func DefaultConfig(machineType types.Type) *Config {
	cfg := &Config{overflowPolicy: lang.OverflowFail}
	cfg.SetMachineType(machineType)
	cfg.SetHandler(DefaultHandler())
	return cfg
}

// DefaultHandler returns the default logging handler. It writes to stderr
// so results printed on stdout are not interleaved with log lines.
func DefaultHandler() slog.Handler {
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
}

// WithDefaults applies default values to any config properties that are nil
func WithDefaults() Option {
	return func(c *Config) error {
		if c.handler == nil {
			c.handler = DefaultHandler()
		}
		return nil
	}
}
