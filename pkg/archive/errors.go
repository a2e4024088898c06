package archive

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported archive format")
	ErrCompression       = errors.New("compression failed")
	ErrExtraction        = errors.New("extraction failed")
)

// Error reports a failed archive operation on Path.
// errors.Is matches both Kind and the underlying Cause.
type Error struct {
	Op    string
	Path  string
	Kind  error
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Cause)
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func compressionError(path string, cause error) error {
	return &Error{Op: "compress", Path: path, Kind: ErrCompression, Cause: cause}
}

func extractionError(path string, cause error) error {
	return &Error{Op: "extract", Path: path, Kind: ErrExtraction, Cause: cause}
}
