package files

import (
	"context"
)

// Store lists directories. Implementations return children
// sorted by case-sensitive name and classify failures with ErrAccess or ErrNotADirectory.
type Store interface {
	RootTitle() string
	ReadDir(ctx context.Context, dirPath string) ([]DirEntry, error)
}
