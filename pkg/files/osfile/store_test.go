package osfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/glassexplorer/glassexplorer/pkg/files"
	"github.com/stretchr/testify/assert"
)

func TestNewStore(t *testing.T) {
	origHostname := osHostname
	defer func() { osHostname = origHostname }()

	t.Run("hostname", func(t *testing.T) {
		osHostname = func() (string, error) {
			return "test-host", nil
		}
		s := NewStore()
		assert.NotNil(t, s)
		assert.Equal(t, "test-host", s.RootTitle())
	})

	t.Run("hostname_error", func(t *testing.T) {
		osHostname = func() (string, error) {
			return "", errors.New("hostname error")
		}
		s := NewStore()
		assert.Equal(t, "hostname error", s.RootTitle())
	})
}

func TestStore_ReadDir(t *testing.T) {
	ctx := context.Background()
	s := Store{}

	t.Run("sorted_case_sensitive", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"b.txt", "B.txt", "a.txt", "_x"} {
			assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
		}
		assert.NoError(t, os.Mkdir(filepath.Join(dir, "Zdir"), 0755))

		entries, err := s.ReadDir(ctx, dir)
		assert.NoError(t, err)
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
			assert.Equal(t, dir, e.Dir())
		}
		assert.Equal(t, []string{"B.txt", "Zdir", "_x", "a.txt", "b.txt"}, names)
		assert.True(t, entries[1].IsDir())
		assert.False(t, entries[0].IsDir())
	})

	t.Run("symlink_to_dir", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("symlinks need privileges on windows")
		}
		dir := t.TempDir()
		target := filepath.Join(dir, "target")
		assert.NoError(t, os.Mkdir(target, 0755))
		assert.NoError(t, os.Symlink(target, filepath.Join(dir, "link")))

		entries, err := s.ReadDir(ctx, dir)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, "link", entries[0].Name())
		assert.True(t, entries[0].IsDir())
	})

	t.Run("not_a_directory", func(t *testing.T) {
		filePath := filepath.Join(t.TempDir(), "file.txt")
		assert.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))

		_, err := s.ReadDir(ctx, filePath)
		assert.ErrorIs(t, err, files.ErrNotADirectory)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := s.ReadDir(ctx, filepath.Join(t.TempDir(), "missing"))
		assert.ErrorIs(t, err, files.ErrNotADirectory)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("read_error", func(t *testing.T) {
		origReadDir := osReadDir
		defer func() { osReadDir = origReadDir }()
		osReadDir = func(name string) ([]os.DirEntry, error) {
			return nil, os.ErrPermission
		}
		_, err := s.ReadDir(ctx, t.TempDir())
		assert.ErrorIs(t, err, files.ErrAccess)
		assert.ErrorIs(t, err, os.ErrPermission)
	})

	t.Run("stat_error", func(t *testing.T) {
		origStat := osStat
		defer func() { osStat = origStat }()
		osStat = func(name string) (os.FileInfo, error) {
			return nil, os.ErrPermission
		}
		_, err := s.ReadDir(ctx, "/whatever")
		assert.ErrorIs(t, err, files.ErrAccess)
	})

	t.Run("cancelled_context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.ReadDir(cancelled, t.TempDir())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSortEntries(t *testing.T) {
	entries := []files.DirEntry{
		files.NewDirEntry("/d", "b", false),
		files.NewDirEntry("/d", "A", true),
		files.NewDirEntry("/d", "a", false),
	}
	sorted := SortEntries(entries)
	assert.Equal(t, "A", sorted[0].Name())
	assert.Equal(t, "a", sorted[1].Name())
	assert.Equal(t, "b", sorted[2].Name())
}
