package files

import (
	"errors"
	"fmt"
)

var (
	// ErrAccess reports a permission or IO failure while reading a path.
	ErrAccess = errors.New("access error")

	// ErrNotADirectory reports a navigation target that is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)

// PathError binds one of the sentinel errors above to the path and the underlying cause.
type PathError struct {
	Kind  error
	Path  string
	Cause error
}

func (e *PathError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Cause)
}

// Is matches the sentinel kind, so errors.Is(err, ErrAccess) works on wrapped values.
func (e *PathError) Is(target error) bool {
	return target == e.Kind
}

func (e *PathError) Unwrap() error {
	return e.Cause
}

func NewAccessError(path string, cause error) error {
	return &PathError{Kind: ErrAccess, Path: path, Cause: cause}
}

func NewNotADirectoryError(path string) error {
	return &PathError{Kind: ErrNotADirectory, Path: path}
}
