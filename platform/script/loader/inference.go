package loader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// InferLoader returns a Loader suited to input:
//   - string: "file://" URLs load from disk, anything else is an inline expression
//   - []byte: FromBytes
//   - io.Reader: FromIoReader
//   - Loader: returned as-is
//
// Strings are never treated as bare paths, since "10 / 2" is a valid expression.
func InferLoader(input any) (Loader, error) {
	switch v := input.(type) {
	case string:
		return inferFromString(v)
	case []byte:
		return NewFromBytes(v)
	case Loader:
		return v, nil
	case io.Reader:
		return NewFromIoReader(v, "inferred")
	default:
		return nil, fmt.Errorf("unsupported input type: %T", input)
	}
}

func inferFromString(input string) (Loader, error) {
	trimmed := strings.TrimSpace(input)
	path, ok := strings.CutPrefix(trimmed, "file://")
	if !ok {
		return NewFromString(input)
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve relative path %q: %w", path, err)
		}
		path = absPath
	}
	return NewFromDisk(path)
}
