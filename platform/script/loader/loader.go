package loader

import (
	"io"
	"net/url"
)

// Loader supplies expression source to a compiler.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}
