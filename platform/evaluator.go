package platform

import (
	"context"
)

// Evaluator runs a compiled expression.
type Evaluator interface {
	// Eval evaluates the pre-compiled expression. The expression and its
	// configuration were provided during evaluator creation, so one compiled
	// Evaluator can be evaluated many times, from many goroutines.
	Eval(ctx context.Context) (EvaluatorResponse, error)
}

// EvaluatorResponse is the result of a single evaluation.
type EvaluatorResponse interface {
	// Interface returns the result as a native Go value.
	Interface() any

	// Inspect returns a string representation of the result.
	Inspect() string

	// GetScriptExeID returns the ID of the executable unit that produced the result.
	GetScriptExeID() string

	// GetExecTime returns the time it took to evaluate the expression.
	GetExecTime() string
}
