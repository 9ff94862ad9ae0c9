package loader

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/robbyt/go-polycalc/internal/helpers"
)

// FromString implements the Loader interface for string content.
type FromString struct {
	content   string
	sourceURL *url.URL
}

// NewFromString creates a new loader from string content. The content is
// trimmed of surrounding whitespace. Empty content is accepted: judging the
// expression is left to the compiler.
func NewFromString(content string) (*FromString, error) {
	content = strings.TrimSpace(content)

	u, err := url.Parse("string://inline/" + helpers.ShortSHA256(content, 8))
	if err != nil {
		return nil, fmt.Errorf("failed to create source URL: %w", err)
	}

	return &FromString{
		content:   content,
		sourceURL: u,
	}, nil
}

func (l *FromString) String() string {
	return fmt.Sprintf("loader.FromString{Chars: %d}", len(l.content))
}

func (l *FromString) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(l.content)), nil
}

// GetSourceURL returns the source URL of the expression.
func (l *FromString) GetSourceURL() *url.URL {
	return l.sourceURL
}
