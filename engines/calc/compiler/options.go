package compiler

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/robbyt/go-polycalc/engines/calc/lang"
	"github.com/robbyt/go-polycalc/internal/helpers"
)

// FunctionalOption is a function that configures a Compiler instance
type FunctionalOption func(*Compiler) error

// WithOverflowPolicy sets how compiled programs treat results outside the range of int.
func WithOverflowPolicy(policy lang.OverflowPolicy) FunctionalOption {
	return func(c *Compiler) error {
		switch policy {
		case lang.OverflowFail, lang.OverflowWrap, lang.OverflowSaturate:
			c.policy = policy
			return nil
		}
		return fmt.Errorf("invalid overflow policy: %s", policy)
	}
}

// WithLogHandler creates an option to set the log handler for the compiler.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(c *Compiler) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		c.logHandler = handler
		// Clear logger if handler is explicitly set
		c.logger = nil
		return nil
	}
}

// WithLogger creates an option to set a specific logger for the compiler.
// The logger's groups are kept as configured by the caller.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(c *Compiler) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = logger
		// Clear handler if logger is explicitly set
		c.logHandler = nil
		return nil
	}
}

// setupLogger configures the logger and handler based on the current state.
func (c *Compiler) setupLogger() {
	if c.logger != nil {
		c.logHandler = c.logger.Handler()
	} else {
		c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "calc", "Compiler")
	}
}

// validate checks if the compiler configuration is valid
func (c *Compiler) validate() error {
	if c.logHandler == nil && c.logger == nil {
		return fmt.Errorf("either log handler or logger must be specified")
	}
	return nil
}

// applyDefaults sets the default values for a compiler
func (c *Compiler) applyDefaults() {
	if c.logHandler == nil && c.logger == nil {
		c.logHandler = slog.NewTextHandler(os.Stderr, nil)
	}
	c.policy = lang.OverflowFail
}
