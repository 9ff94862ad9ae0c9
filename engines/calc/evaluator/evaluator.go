package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-polycalc/engines/calc/compiler"
	"github.com/robbyt/go-polycalc/internal/helpers"
	"github.com/robbyt/go-polycalc/platform"
	"github.com/robbyt/go-polycalc/platform/script"
)

// Evaluator runs compiled calc programs. It holds no per-evaluation state,
// so one Evaluator may be used from many goroutines.
type Evaluator struct {
	// execUnit contains the compiled program
	execUnit *script.ExecutableUnit

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new Evaluator object
func New(
	handler slog.Handler,
	execUnit *script.ExecutableUnit,
) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "calc", "Evaluator")

	return &Evaluator{
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
}

func (be *Evaluator) String() string {
	return "calc.Evaluator"
}

// GetExecutableUnit returns the unit this evaluator runs.
func (be *Evaluator) GetExecutableUnit() *script.ExecutableUnit {
	return be.execUnit
}

// Eval folds the compiled program and returns its integer result. Arithmetic
// failures wrap lang.ErrDivisionByZero or lang.ErrIntegerOverflow.
func (be *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	logger := be.logger.WithGroup("Eval")
	if be.execUnit == nil {
		return nil, fmt.Errorf("executable unit is nil")
	}

	content := be.execUnit.GetContent()
	if content == nil {
		return nil, fmt.Errorf("content is nil")
	}

	bytecode := content.GetByteCode()
	if bytecode == nil {
		return nil, fmt.Errorf("bytecode is nil")
	}

	exeID := be.execUnit.GetID()
	if exeID == "" {
		return nil, fmt.Errorf("exeID is empty")
	}
	logger = logger.With("exeID", exeID)

	exe, ok := content.(*compiler.Executable)
	if !ok {
		return nil, fmt.Errorf(
			"invalid content type: expected *compiler.Executable, got %T for ID: %s",
			content, exeID,
		)
	}
	prog := exe.GetProgram()
	if prog == nil {
		return nil, fmt.Errorf("program is nil for ID: %s", exeID)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("eval cancelled: %w", err)
	}

	startTime := time.Now()
	value, err := prog.Run(exe.GetOverflowPolicy())
	execTime := time.Since(startTime)
	if err != nil {
		logger.DebugContext(ctx, "exec failed", "error", err)
		return nil, fmt.Errorf("exec error: %w", err)
	}

	result := newEvalResult(value, execTime, exeID)
	logger.DebugContext(ctx, "exec complete", "result", result)
	return result, nil
}
