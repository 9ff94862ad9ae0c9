package loader

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"unicode/utf8"

	"github.com/robbyt/go-polycalc/internal/helpers"
)

// FromBytes implements the Loader interface for content from a byte slice.
type FromBytes struct {
	content   []byte
	sourceURL *url.URL
}

// NewFromBytes creates a new Loader from a byte slice holding UTF-8 text.
func NewFromBytes(content []byte) (*FromBytes, error) {
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: content is not valid UTF-8", ErrScriptNotAvailable)
	}

	contentHash := helpers.SHA256Bytes(content)[:8]
	u, err := url.Parse("bytes://inline/" + contentHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromBytes{
		content:   bytes.Clone(content),
		sourceURL: u,
	}, nil
}

func (l *FromBytes) String() string {
	return fmt.Sprintf("loader.FromBytes{Bytes: %d}", len(l.content))
}

// GetReader returns a new reader for the stored content.
func (l *FromBytes) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(l.content)), nil
}

// GetSourceURL returns the source URL of the expression.
func (l *FromBytes) GetSourceURL() *url.URL {
	return l.sourceURL
}
