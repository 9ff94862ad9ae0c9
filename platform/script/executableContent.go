package script

import (
	engineTypes "github.com/robbyt/go-polycalc/engines/types"
)

// ExecutableContent represents validated expression content that is ready for evaluation.
// It provides access to the source and its compiled form.
type ExecutableContent interface {
	// GetSource returns the original expression as a string.
	GetSource() string

	// GetByteCode returns the compiled form in an engine-specific format. The
	// evaluator asserts it into the type it requires and fails at runtime if
	// the engine type and ByteCode are not compatible.
	GetByteCode() any

	// GetMachineType returns the engine type this content is intended to run on.
	GetMachineType() engineTypes.Type
}
