// Package polycalc evaluates whitespace-separated integer expressions
// strictly left to right: every operator has the same precedence, so
// "10 + 5 * 2" is 30.
//
// Evaluate is the one-shot entry point. The From* constructors compile an
// expression once and return a platform.Evaluator that can be evaluated
// many times.
package polycalc

import (
	"fmt"
	"io"

	"github.com/robbyt/go-polycalc/engines/calc"
	"github.com/robbyt/go-polycalc/engines/calc/compiler"
	"github.com/robbyt/go-polycalc/engines/calc/lang"
	"github.com/robbyt/go-polycalc/engines/types"
	"github.com/robbyt/go-polycalc/options"
	"github.com/robbyt/go-polycalc/platform"
	"github.com/robbyt/go-polycalc/platform/script/loader"
)

// Evaluate reduces expression left to right and returns the result. Results
// outside the range of int fail with lang.ErrIntegerOverflow.
func Evaluate(expression string) (int, error) {
	return lang.Evaluate(expression)
}

// FromString compiles an inline expression.
func FromString(expression string, opts ...options.Option) (platform.Evaluator, error) {
	l, err := loader.NewFromString(expression)
	if err != nil {
		return nil, err
	}
	return FromLoader(l, opts...)
}

// FromFile compiles the expression stored at an absolute path or file:// URL.
func FromFile(path string, opts ...options.Option) (platform.Evaluator, error) {
	l, err := loader.NewFromDisk(path)
	if err != nil {
		return nil, err
	}
	return FromLoader(l, opts...)
}

// FromReader reads all of r and compiles it as one expression.
func FromReader(r io.Reader, sourceName string, opts ...options.Option) (platform.Evaluator, error) {
	l, err := loader.NewFromIoReader(r, sourceName)
	if err != nil {
		return nil, err
	}
	return FromLoader(l, opts...)
}

// FromLoader compiles the expression supplied by l.
func FromLoader(l loader.Loader, opts ...options.Option) (platform.Evaluator, error) {
	return NewCalcEvaluator(append([]options.Option{options.WithLoader(l)}, opts...)...)
}

// NewCalcEvaluator creates a new evaluator for calc expressions. A loader
// must be supplied with options.WithLoader.
func NewCalcEvaluator(opts ...options.Option) (platform.Evaluator, error) {
	cfg := options.DefaultConfig(types.Calc)

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	// Apply defaults option as final step to fill in any missing values
	if err := options.WithDefaults()(cfg); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return createEvaluator(cfg)
}

func createEvaluator(cfg *options.Config) (platform.Evaluator, error) {
	switch cfg.GetMachineType() {
	case types.Calc:
		e, err := calc.NewEvaluator(
			cfg.GetHandler(),
			cfg.GetLoader(),
			compiler.WithOverflowPolicy(cfg.GetOverflowPolicy()),
		)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, fmt.Errorf("unsupported machine type: %s", cfg.GetMachineType())
	}
}
