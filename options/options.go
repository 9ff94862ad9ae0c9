package options

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/robbyt/go-polycalc/engines/calc/lang"
	"github.com/robbyt/go-polycalc/engines/types"
	"github.com/robbyt/go-polycalc/platform/script/loader"
)

// Config holds all configuration for creating an evaluator
type Config struct {
	// Logger for the engine
	handler slog.Handler
	// Engine the expression is compiled for
	machineType types.Type
	// Loader for the expression source
	loader loader.Loader
	// What to do when a result leaves the range of int
	overflowPolicy lang.OverflowPolicy
}

// Option is a function that modifies Config
type Option func(*Config) error

// WithLogHandler sets the log handler for the engine
func WithLogHandler(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler != nil {
			c.handler = handler
		}
		return nil
	}
}

// WithSlog sets the log handler from an existing slog logger
func WithSlog(logger *slog.Logger) Option {
	return func(c *Config) error {
		if logger != nil {
			c.handler = logger.Handler()
		}
		return nil
	}
}

// WithLoader sets the expression loader
func WithLoader(l loader.Loader) Option {
	return func(c *Config) error {
		if l != nil {
			c.loader = l
		}
		return nil
	}
}

// WithOverflowPolicy sets how results outside the range of int are handled
func WithOverflowPolicy(policy lang.OverflowPolicy) Option {
	return func(c *Config) error {
		switch policy {
		case lang.OverflowFail, lang.OverflowWrap, lang.OverflowSaturate:
			c.overflowPolicy = policy
			return nil
		}
		return fmt.Errorf("invalid overflow policy: %s", policy)
	}
}

// Validate reports every missing setting at once.
func (c *Config) Validate() error {
	var errz []error
	if c.handler == nil {
		errz = append(errz, fmt.Errorf("no logger specified"))
	}
	if c.machineType == "" {
		errz = append(errz, fmt.Errorf("no machine type specified"))
	}
	if c.loader == nil {
		errz = append(errz, fmt.Errorf("no loader specified"))
	}
	return errors.Join(errz...)
}

// GetHandler returns the configured log handler
func (c *Config) GetHandler() slog.Handler {
	return c.handler
}

// SetHandler sets the log handler
func (c *Config) SetHandler(handler slog.Handler) {
	c.handler = handler
}

// GetMachineType returns the configured machine type
func (c *Config) GetMachineType() types.Type {
	return c.machineType
}

// SetMachineType sets the machine type
func (c *Config) SetMachineType(machineType types.Type) {
	c.machineType = machineType
}

// GetLoader returns the configured loader
func (c *Config) GetLoader() loader.Loader {
	return c.loader
}

// SetLoader sets the loader
func (c *Config) SetLoader(l loader.Loader) {
	c.loader = l
}

// GetOverflowPolicy returns the configured overflow policy
func (c *Config) GetOverflowPolicy() lang.OverflowPolicy {
	return c.overflowPolicy
}
