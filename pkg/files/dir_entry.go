package files

import (
	"path/filepath"
	"strings"
)

// DirEntry is one immediate child of a listed directory.
// Entries are immutable and are replaced wholesale when the parent is listed again.
type DirEntry struct {
	name  string
	dir   string
	isDir bool
}

func NewDirEntry(dir, name string, isDir bool) DirEntry {
	if strings.ContainsRune(name, filepath.Separator) {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	return DirEntry{
		name:  name,
		dir:   dir,
		isDir: isDir,
	}
}

func (d DirEntry) Name() string { return d.name }
func (d DirEntry) Dir() string  { return d.dir }
func (d DirEntry) IsDir() bool  { return d.isDir }

func (d DirEntry) FullPath() string {
	return filepath.Join(d.dir, d.name)
}

func (d DirEntry) String() string {
	return d.FullPath()
}
