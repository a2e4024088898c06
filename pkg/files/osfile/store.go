package osfile

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/glassexplorer/glassexplorer/pkg/files"
)

var osReadDir = os.ReadDir
var osStat = os.Stat
var osHostname = os.Hostname

var _ files.Store = (*Store)(nil)

// Store reads directories of the local filesystem.
type Store struct {
	title string
}

func (s Store) RootTitle() string {
	return s.title
}

func (s Store) ReadDir(ctx context.Context, dirPath string) ([]files.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info, err := osStat(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &files.PathError{Kind: files.ErrNotADirectory, Path: dirPath, Cause: err}
		}
		return nil, files.NewAccessError(dirPath, err)
	}
	if !info.IsDir() {
		return nil, files.NewNotADirectoryError(dirPath)
	}
	children, err := osReadDir(dirPath)
	if err != nil {
		return nil, files.NewAccessError(dirPath, err)
	}
	entries := make([]files.DirEntry, 0, len(children))
	for _, child := range children {
		name := child.Name()
		isDir := child.IsDir()
		if child.Type()&os.ModeSymlink != 0 {
			// Links to directories are browsable like directories.
			if target, statErr := osStat(filepath.Join(dirPath, name)); statErr == nil {
				isDir = target.IsDir()
			}
		}
		entries = append(entries, files.NewDirEntry(dirPath, name, isDir))
	}
	return SortEntries(entries), nil
}

// SortEntries orders entries by case-sensitive name. Directories are not grouped first.
func SortEntries(entries []files.DirEntry) []files.DirEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries
}

func NewStore() *Store {
	store := Store{}
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = err.Error()
	}
	return &store
}
