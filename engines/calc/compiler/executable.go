package compiler

import (
	"fmt"

	"github.com/robbyt/go-polycalc/engines/calc/lang"
	engineTypes "github.com/robbyt/go-polycalc/engines/types"
)

// Executable is a compiled calc expression. It implements script.ExecutableContent.
type Executable struct {
	source  string
	program *lang.Program
	policy  lang.OverflowPolicy
}

func newExecutable(source string, program *lang.Program, policy lang.OverflowPolicy) *Executable {
	if program == nil {
		return nil
	}
	return &Executable{
		source:  source,
		program: program,
		policy:  policy,
	}
}

func (e *Executable) String() string {
	return fmt.Sprintf("calc.Executable{Steps: %d, Overflow: %s}", len(e.program.Steps), e.policy)
}

// GetSource returns the expression exactly as it was read.
func (e *Executable) GetSource() string {
	return e.source
}

// GetByteCode returns the *lang.Program.
func (e *Executable) GetByteCode() any {
	return e.program
}

func (e *Executable) GetMachineType() engineTypes.Type {
	return engineTypes.Calc
}

// GetProgram returns the compiled program without a type assertion.
func (e *Executable) GetProgram() *lang.Program {
	return e.program
}

// GetOverflowPolicy returns the policy the program must be run with.
func (e *Executable) GetOverflowPolicy() lang.OverflowPolicy {
	return e.policy
}
