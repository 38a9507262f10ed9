package timetable

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file type has no grid adapter.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// DocumentError reports a document that could not be opened or decoded.
// No partial result accompanies it.
type DocumentError struct {
	Path   string
	Format string
	Err    error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("open %s document %q: %v", e.Format, e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// NewDocumentError creates a new DocumentError.
func NewDocumentError(path, format string, err error) *DocumentError {
	return &DocumentError{
		Path:   path,
		Format: format,
		Err:    err,
	}
}
