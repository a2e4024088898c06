package archive

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScenarioDir(t *testing.T) (parent, x string) {
	t.Helper()
	parent = t.TempDir()
	x = filepath.Join(parent, "x")
	require.NoError(t, os.MkdirAll(filepath.Join(x, "b"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(x, "a.txt"), []byte("hello"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(x, "b", "c.txt"), []byte("nested content"), 0644))
	return parent, x
}

func zipEntries(t *testing.T, zipPath string) map[string]*zip.File {
	t.Helper()
	r, err := zip.OpenReader(zipPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
	})
	entries := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		entries[f.Name] = f
	}
	return entries
}

func sortedKeys(m map[string]*zip.File) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func readFile(t *testing.T, filePath string) string {
	t.Helper()
	data, err := os.ReadFile(filePath)
	require.NoError(t, err)
	return string(data)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"/tmp/x.zip", FormatZip},
		{"/tmp/x.tar", FormatTarGz},
		{"/tmp/x.tar.gz", FormatTarGz},
		{"/tmp/x.rar", FormatUnknown},
		{"/tmp/x.tgz", FormatUnknown},
		{"/tmp/x.ZIP", FormatUnknown},
		{"/tmp/zip", FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFormat(tt.path))
		})
	}
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "zip", FormatZip.String())
	assert.Equal(t, "tar.gz", FormatTarGz.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/tmp/x.zip", CompressedPath("/tmp/x"))
	assert.Equal(t, "/tmp/x.zip", CompressedPath("/tmp/x/"))
	assert.Equal(t, "/tmp/a.txt.zip", CompressedPath("/tmp/a.txt"))
	assert.Equal(t, "/tmp/x_extraido", ExtractedPath("/tmp/x.zip"))
	assert.Equal(t, "/tmp/x.tar_extraido", ExtractedPath("/tmp/x.tar.gz"))
	assert.Equal(t, "/tmp/x_extraido", ExtractedPath("/tmp/x.tar"))
}

func TestCompress(t *testing.T) {
	ctx := context.Background()

	t.Run("directory_keeps_top_level_name", func(t *testing.T) {
		parent, x := newScenarioDir(t)
		dest, err := Compress(ctx, x)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(parent, "x.zip"), dest)

		entries := zipEntries(t, dest)
		assert.Equal(t, []string{"x/a.txt", "x/b/c.txt"}, sortedKeys(entries))
		for _, f := range entries {
			assert.Equal(t, zip.Deflate, f.Method)
		}
	})

	t.Run("single_file", func(t *testing.T) {
		_, x := newScenarioDir(t)
		src := filepath.Join(x, "a.txt")
		dest, err := Compress(ctx, src)
		require.NoError(t, err)
		assert.Equal(t, src+".zip", dest)
		assert.Equal(t, []string{"a.txt"}, sortedKeys(zipEntries(t, dest)))
	})

	t.Run("empty_directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "empty")
		require.NoError(t, os.Mkdir(dir, 0755))
		dest, err := Compress(ctx, dir)
		require.NoError(t, err)
		assert.Empty(t, zipEntries(t, dest))
	})

	t.Run("missing_source", func(t *testing.T) {
		src := filepath.Join(t.TempDir(), "gone")
		dest, err := Compress(ctx, src)
		assert.ErrorIs(t, err, ErrCompression)
		assert.ErrorIs(t, err, os.ErrNotExist)
		_, statErr := os.Stat(dest)
		assert.True(t, os.IsNotExist(statErr))

		var archiveErr *Error
		require.ErrorAs(t, err, &archiveErr)
		assert.Equal(t, "compress", archiveErr.Op)
		assert.Equal(t, src, archiveErr.Path)
	})

	t.Run("cancelled_context", func(t *testing.T) {
		_, x := newScenarioDir(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := Compress(cancelled, x)
		assert.ErrorIs(t, err, ErrCompression)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCompressExtractRoundTrip(t *testing.T) {
	ctx := context.Background()

	t.Run("directory", func(t *testing.T) {
		parent, x := newScenarioDir(t)
		zipPath, err := Compress(ctx, x)
		require.NoError(t, err)

		dest, err := Extract(ctx, zipPath)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(parent, "x_extraido"), dest)
		assert.Equal(t, "hello", readFile(t, filepath.Join(dest, "x", "a.txt")))
		assert.Equal(t, "nested content", readFile(t, filepath.Join(dest, "x", "b", "c.txt")))
	})

	t.Run("file", func(t *testing.T) {
		_, x := newScenarioDir(t)
		zipPath, err := Compress(ctx, filepath.Join(x, "a.txt"))
		require.NoError(t, err)

		dest, err := Extract(ctx, zipPath)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(x, "a.txt_extraido"), dest)
		assert.Equal(t, "hello", readFile(t, filepath.Join(dest, "a.txt")))
	})

	t.Run("binary_content", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "bin")
		require.NoError(t, os.Mkdir(dir, 0755))
		payload := bytes.Repeat([]byte{0, 1, 2, 254, 255}, 10000)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "blob"), payload, 0644))

		zipPath, err := Compress(ctx, dir)
		require.NoError(t, err)
		dest, err := Extract(ctx, zipPath)
		require.NoError(t, err)
		extracted, err := os.ReadFile(filepath.Join(dest, "bin", "blob"))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(payload, extracted))
	})
}

type tarEntry struct {
	name     string
	body     string
	typeflag byte
	linkname string
}

func writeTarGz(t *testing.T, archivePath string, entries []tarEntry) {
	t.Helper()
	f, err := os.Create(archivePath)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)
	for _, e := range entries {
		typeflag := e.typeflag
		if typeflag == 0 {
			typeflag = tar.TypeReg
		}
		header := &tar.Header{
			Name:     e.name,
			Mode:     0644,
			Size:     int64(len(e.body)),
			Typeflag: typeflag,
			Linkname: e.linkname,
		}
		if typeflag == tar.TypeDir {
			header.Mode = 0755
			header.Size = 0
		}
		if typeflag == tar.TypeSymlink {
			header.Size = 0
		}
		require.NoError(t, tw.WriteHeader(header))
		if header.Size > 0 {
			_, err = tw.Write([]byte(e.body))
			require.NoError(t, err)
		}
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
}

func TestExtract(t *testing.T) {
	ctx := context.Background()

	t.Run("tar_gz", func(t *testing.T) {
		archivePath := filepath.Join(t.TempDir(), "pkg.tar.gz")
		writeTarGz(t, archivePath, []tarEntry{
			{name: "pkg/", typeflag: tar.TypeDir},
			{name: "pkg/readme.md", body: "# readme"},
			{name: "pkg/src/main.go", body: "package main"},
		})

		dest, err := Extract(ctx, archivePath)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(filepath.Dir(archivePath), "pkg.tar_extraido"), dest)
		assert.Equal(t, "# readme", readFile(t, filepath.Join(dest, "pkg", "readme.md")))
		assert.Equal(t, "package main", readFile(t, filepath.Join(dest, "pkg", "src", "main.go")))
	})

	t.Run("dot_tar_is_read_as_gzip", func(t *testing.T) {
		archivePath := filepath.Join(t.TempDir(), "pkg.tar")
		writeTarGz(t, archivePath, []tarEntry{{name: "a.txt", body: "a"}})

		dest, err := Extract(ctx, archivePath)
		require.NoError(t, err)
		assert.Equal(t, "a", readFile(t, filepath.Join(dest, "a.txt")))
	})

	t.Run("plain_tar_fails", func(t *testing.T) {
		archivePath := filepath.Join(t.TempDir(), "plain.tar")
		var buf bytes.Buffer
		tw := tar.NewWriter(&buf)
		require.NoError(t, tw.WriteHeader(&tar.Header{Name: "a.txt", Mode: 0644, Size: 1}))
		_, err := tw.Write([]byte("a"))
		require.NoError(t, err)
		require.NoError(t, tw.Close())
		require.NoError(t, os.WriteFile(archivePath, buf.Bytes(), 0644))

		_, err = Extract(ctx, archivePath)
		assert.ErrorIs(t, err, ErrExtraction)
	})

	t.Run("relative_symlink_inside", func(t *testing.T) {
		archivePath := filepath.Join(t.TempDir(), "links.tar.gz")
		writeTarGz(t, archivePath, []tarEntry{
			{name: "d/target.txt", body: "t"},
			{name: "d/link.txt", typeflag: tar.TypeSymlink, linkname: "target.txt"},
		})

		dest, err := Extract(ctx, archivePath)
		require.NoError(t, err)
		linkTarget, err := os.Readlink(filepath.Join(dest, "d", "link.txt"))
		require.NoError(t, err)
		assert.Equal(t, "target.txt", linkTarget)
	})

	t.Run("escaping_symlink_rejected", func(t *testing.T) {
		archivePath := filepath.Join(t.TempDir(), "evil.tar.gz")
		writeTarGz(t, archivePath, []tarEntry{
			{name: "link", typeflag: tar.TypeSymlink, linkname: "/etc/passwd"},
		})

		dest, err := Extract(ctx, archivePath)
		assert.ErrorIs(t, err, ErrExtraction)
		_, statErr := os.Lstat(filepath.Join(dest, "link"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("zip_slip", func(t *testing.T) {
		dir := t.TempDir()
		archivePath := filepath.Join(dir, "nested", "evil.zip")
		require.NoError(t, os.Mkdir(filepath.Dir(archivePath), 0755))
		f, err := os.Create(archivePath)
		require.NoError(t, err)
		zw := zip.NewWriter(f)
		w, err := zw.Create("../../outside.txt")
		require.NoError(t, err)
		_, err = w.Write([]byte("evil"))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		require.NoError(t, f.Close())

		_, err = Extract(ctx, archivePath)
		if err != nil {
			assert.ErrorIs(t, err, ErrExtraction)
		}
		_, statErr := os.Stat(filepath.Join(dir, "outside.txt"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("unsupported_leaves_filesystem_unchanged", func(t *testing.T) {
		dir := t.TempDir()
		archivePath := filepath.Join(dir, "x.rar")
		require.NoError(t, os.WriteFile(archivePath, []byte("rar"), 0644))

		dest, err := Extract(ctx, archivePath)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
		assert.Equal(t, "", dest)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "x.rar", entries[0].Name())
	})

	t.Run("missing_archive", func(t *testing.T) {
		archivePath := filepath.Join(t.TempDir(), "gone.zip")
		_, err := Extract(ctx, archivePath)
		assert.ErrorIs(t, err, ErrExtraction)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("corrupt_zip", func(t *testing.T) {
		archivePath := filepath.Join(t.TempDir(), "bad.zip")
		require.NoError(t, os.WriteFile(archivePath, []byte("not a zip"), 0644))
		_, err := Extract(ctx, archivePath)
		assert.ErrorIs(t, err, ErrExtraction)
	})
}

func TestSafeJoin(t *testing.T) {
	dest := filepath.Join(string(filepath.Separator), "tmp", "dest")

	target, err := safeJoin(dest, "a/b.txt")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "a", "b.txt"), target)

	target, err = safeJoin(dest, "/abs.txt")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "abs.txt"), target)

	_, err = safeJoin(dest, "../x.txt")
	assert.Error(t, err)

	_, err = safeJoin(dest, "a/../../x.txt")
	assert.Error(t, err)

	_, err = safeJoin(dest, "..")
	assert.Error(t, err)

	target, err = safeJoin(dest, "..dots")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "..dots"), target)
}

func TestError(t *testing.T) {
	err := &Error{Op: "extract", Path: "/tmp/x.rar", Kind: ErrUnsupportedFormat}
	assert.Equal(t, "extract /tmp/x.rar: unsupported archive format", err.Error())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.NotErrorIs(t, err, ErrExtraction)

	wrapped := compressionError("/tmp/x", os.ErrPermission)
	assert.Equal(t, "compress /tmp/x: compression failed: permission denied", wrapped.Error())
	assert.ErrorIs(t, wrapped, os.ErrPermission)
}
