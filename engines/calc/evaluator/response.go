package evaluator

import (
	"fmt"
	"strconv"
	"time"
)

// execResult is the outcome of one evaluation. It implements platform.EvaluatorResponse.
type execResult struct {
	value       int
	execTime    time.Duration
	scriptExeID string
}

func newEvalResult(value int, execTime time.Duration, versionID string) *execResult {
	return &execResult{
		value:       value,
		execTime:    execTime,
		scriptExeID: versionID,
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"ExecResult{Value: %d, ExecTime: %s, ScriptExeID: %s}",
		r.value, r.GetExecTime(), r.GetScriptExeID())
}

// Value returns the result without a type assertion.
func (r *execResult) Value() int {
	return r.value
}

// Interface returns the result as an int.
func (r *execResult) Interface() any {
	return r.value
}

// Inspect returns the result in base 10.
func (r *execResult) Inspect() string {
	return strconv.Itoa(r.value)
}

func (r *execResult) GetScriptExeID() string {
	return r.scriptExeID
}

func (r *execResult) GetExecTime() string {
	return r.execTime.String()
}
