package mocks

import (
	"io"
	"net/url"
	"strings"

	"github.com/stretchr/testify/mock"
)

// Loader is a mock implementation of loader.Loader.
type Loader struct {
	mock.Mock
}

func (m *Loader) GetSourceURL() *url.URL {
	args := m.Called()
	u, _ := args.Get(0).(*url.URL)
	return u
}

func (m *Loader) GetReader() (io.ReadCloser, error) {
	args := m.Called()
	r, _ := args.Get(0).(io.ReadCloser)
	return r, args.Error(1)
}

// NewLoaderWithContent returns a Loader that serves content for a single GetReader call.
func NewLoaderWithContent(content string, sourceURL *url.URL) *Loader {
	m := new(Loader)
	m.On("GetReader").Return(io.NopCloser(strings.NewReader(content)), nil).Once()
	m.On("GetSourceURL").Return(sourceURL)
	return m
}
