package helpers

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	t.Parallel()

	t.Run("custom handler with group", func(t *testing.T) {
		var buf bytes.Buffer
		h := slog.NewTextHandler(&buf, nil)

		gotHandler, logger := SetupLogger(h, "calc", "Compiler")
		require.Same(t, h, gotHandler)

		logger.Info("compiled", "steps", 2)
		assert.Contains(t, buf.String(), "Compiler.steps=2")
	})

	t.Run("custom handler without group", func(t *testing.T) {
		var buf bytes.Buffer
		h := slog.NewTextHandler(&buf, nil)

		_, logger := SetupLogger(h, "calc", "")
		logger.Info("hello", "k", "v")
		assert.Contains(t, buf.String(), " k=v")
	})

	t.Run("nil handler gets a default", func(t *testing.T) {
		handler, logger := SetupLogger(nil, "calc", "Evaluator")
		require.NotNil(t, handler)
		require.NotNil(t, logger)
	})
}
