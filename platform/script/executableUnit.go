package script

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	engineTypes "github.com/robbyt/go-polycalc/engines/types"
	"github.com/robbyt/go-polycalc/internal/helpers"
	"github.com/robbyt/go-polycalc/platform/script/loader"
)

const checksumLength = 12

// ExecutableUnit is one compiled expression together with where it came from.
type ExecutableUnit struct {
	// ID identifies this unit: the loader's source URL when known, otherwise
	// a prefix of the SHA-256 of the expression source.
	ID string

	// CreatedAt records when this executable unit was compiled.
	CreatedAt time.Time

	// ScriptLoader loaded the expression (string, bytes, file, reader).
	ScriptLoader loader.Loader

	// Compiler is the engine-specific compiler used to build Content.
	Compiler Compiler

	// Content holds the compiled program and its source.
	Content ExecutableContent

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewExecutableUnit reads the expression from scriptLoader and compiles it.
func NewExecutableUnit(
	handler slog.Handler,
	versionID string,
	scriptLoader loader.Loader,
	compiler Compiler,
) (*ExecutableUnit, error) {
	handler, logger := helpers.SetupLogger(handler, "script", "ExecutableUnit")

	if compiler == nil {
		return nil, errors.New("compiler is nil")
	}
	if scriptLoader == nil {
		return nil, errors.New("loader is nil")
	}

	reader, err := scriptLoader.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader from loader: %w", err)
	}

	exe, err := compiler.Compile(reader)
	if err != nil {
		return nil, fmt.Errorf("compiler failed: %w", err)
	}

	if versionID == "" {
		versionID = helpers.ShortSHA256(exe.GetSource(), checksumLength)
	}

	logger = logger.With("ID", versionID)
	logger.Debug("executable unit created", "machineType", exe.GetMachineType())

	return &ExecutableUnit{
		ID:           versionID,
		CreatedAt:    time.Now(),
		ScriptLoader: scriptLoader,
		Content:      exe,
		Compiler:     compiler,
		logHandler:   handler,
		logger:       logger,
	}, nil
}

func (exe *ExecutableUnit) String() string {
	return fmt.Sprintf("ExecutableUnit{ID: %s, CreatedAt: %s, Compiler: %s, Loader: %s}",
		exe.ID, exe.CreatedAt, exe.Compiler, exe.ScriptLoader)
}

// GetID returns the unique identifier for this unit.
func (exe *ExecutableUnit) GetID() string {
	return exe.ID
}

// GetContent returns the compiled content.
func (exe *ExecutableUnit) GetContent() ExecutableContent {
	return exe.Content
}

func (exe *ExecutableUnit) GetCreatedAt() time.Time {
	return exe.CreatedAt
}

// GetMachineType returns the engine type this unit is intended to run on.
func (exe *ExecutableUnit) GetMachineType() engineTypes.Type {
	return exe.Content.GetMachineType()
}

func (exe *ExecutableUnit) GetCompiler() Compiler {
	return exe.Compiler
}

func (exe *ExecutableUnit) GetLoader() loader.Loader {
	return exe.ScriptLoader
}
