package templating

import (
	"fmt"
	"io/fs"
	"os"
)

// Loader returns the contents of the template file at path.
type Loader interface {
	Load(path string) (string, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(path string) (string, error)

// Load calls fn(path).
func (fn LoaderFunc) Load(path string) (string, error) {
	return fn(path)
}

// FileLoader reads templates from the operating system filesystem.
type FileLoader struct{}

// Load reads the file at path.
func (FileLoader) Load(path string) (string, error) {
	const errCtx = "loading template"

	content, err := os.ReadFile(path) //nolint:gosec // template paths are configured by the caller
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return string(content), nil
}

// MapLoader serves templates from memory, keyed by path.
type MapLoader map[string]string

// Load returns the entry for path, or an error wrapping
// fs.ErrNotExist when there is none.
func (ml MapLoader) Load(path string) (string, error) {
	const errCtx = "loading template"

	content, ok := ml[path]
	if !ok {
		return "", fmt.Errorf(
			"%s: %s: %w", errCtx, path, fs.ErrNotExist,
		)
	}

	return content, nil
}
