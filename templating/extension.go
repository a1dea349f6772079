package templating

import "strings"

// FileExtension is a template file extension such as ".html".
type FileExtension string

// NewFileExtension validates that ext starts with a dot.
func NewFileExtension(ext string) (FileExtension, error) {
	if !strings.HasPrefix(ext, ".") {
		return "", ErrInvalidFileExtension
	}

	return FileExtension(ext), nil
}

func (fe FileExtension) String() string {
	return string(fe)
}

// withExtension appends ext to a logical name that has no dot.
func withExtension(name string, ext FileExtension) string {
	if strings.Contains(name, ".") {
		return name
	}

	return name + string(ext)
}
