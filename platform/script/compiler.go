package script

import "io"

// Compiler turns the expression read from a loader into ExecutableContent.
type Compiler interface {
	// Compile reads and closes scriptReader.
	Compile(scriptReader io.ReadCloser) (ExecutableContent, error)
}
