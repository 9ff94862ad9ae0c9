package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger returns the handler to keep and a logger grouped under groupName.
// A nil handler is replaced by a text handler on stderr, grouped under
// engineName, so that evaluation results written to stdout stay clean.
func SetupLogger(handler slog.Handler, engineName string, groupName string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, nil).WithGroup(engineName)
		slog.New(handler).Warn("Handler is nil, using the default logger configuration.")
	}

	if groupName == "" {
		return handler, slog.New(handler)
	}
	return handler, slog.New(handler.WithGroup(groupName))
}
