package compiler

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/robbyt/go-polycalc/engines/calc/lang"
	"github.com/robbyt/go-polycalc/platform/script"
)

// Compiler validates calc expressions into runnable programs.
type Compiler struct {
	policy     lang.OverflowPolicy
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new calc Compiler with the provided options.
func New(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{}
	c.applyDefaults()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid compiler configuration: %w", err)
	}

	c.setupLogger()
	return c, nil
}

func (c *Compiler) String() string {
	return "calc.Compiler"
}

// Compile reads the whole expression from scriptReader, closes it, and
// returns an *Executable. Syntax errors wrap both ErrValidationFailed and
// the lang error kind. An arithmetic error in the steps before a syntax
// error is reported instead, matching lang.Evaluate.
func (c *Compiler) Compile(scriptReader io.ReadCloser) (script.ExecutableContent, error) {
	if scriptReader == nil {
		return nil, ErrContentNil
	}

	body, err := io.ReadAll(scriptReader)
	if err != nil {
		_ = scriptReader.Close()
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	if err := scriptReader.Close(); err != nil {
		return nil, fmt.Errorf("failed to close reader: %w", err)
	}

	exe, err := c.compile(string(body))
	if err != nil {
		return nil, err
	}
	return exe, nil
}

func (c *Compiler) compile(source string) (*Executable, error) {
	logger := c.logger.WithGroup("compile")
	logger.Debug("Starting validation", "chars", len(source))

	program, err := lang.Parse(lang.Tokenize(source), c.policy)
	if err != nil {
		logger.Warn("Validation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	exe := newExecutable(source, program, c.policy)
	if exe == nil {
		logger.Error("Failed to create Executable from program")
		return nil, ErrExecCreationFailed
	}

	logger.Debug("Validation completed", "steps", len(program.Steps), "overflow", c.policy)
	return exe, nil
}
