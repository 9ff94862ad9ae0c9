package calc

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-polycalc/engines/calc/compiler"
	"github.com/robbyt/go-polycalc/engines/calc/evaluator"
	"github.com/robbyt/go-polycalc/platform/script"
	"github.com/robbyt/go-polycalc/platform/script/loader"
)

// FromCalcLoader compiles the expression supplied by ldr and returns an
// evaluator ready for execution.
//
// Input parameters:
// - logHandler: logger handler for logging
// - ldr: loader implementation for loading the expression
// - opts: compiler options, e.g. compiler.WithOverflowPolicy
func FromCalcLoader(
	logHandler slog.Handler,
	ldr loader.Loader,
	opts ...compiler.FunctionalOption,
) (*evaluator.Evaluator, error) {
	return NewEvaluator(logHandler, ldr, opts...)
}

// NewCompiler creates a new calc compiler using the functional options pattern.
// Returns a compiler implementing the script.Compiler interface.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// NewEvaluator creates a calc evaluator with the program compiled and ready
// for execution. The log handler is passed to the compiler unless opts
// configure a logger of their own.
func NewEvaluator(
	logHandler slog.Handler,
	ldr loader.Loader,
	opts ...compiler.FunctionalOption,
) (*evaluator.Evaluator, error) {
	if ldr == nil {
		return nil, fmt.Errorf("loader is nil")
	}

	if logHandler != nil {
		opts = append([]compiler.FunctionalOption{compiler.WithLogHandler(logHandler)}, opts...)
	}
	c, err := NewCompiler(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calc compiler: %w", err)
	}

	execUnitID := ""
	if sourceURL := ldr.GetSourceURL(); sourceURL != nil {
		execUnitID = sourceURL.String()
	}

	execUnit, err := script.NewExecutableUnit(logHandler, execUnitID, ldr, c)
	if err != nil {
		return nil, err
	}

	return evaluator.New(logHandler, execUnit), nil
}
