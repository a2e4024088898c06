package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mholt/archives"
)

// Extract unpacks archivePath into ExtractedPath(archivePath).
// Unsupported suffixes fail with ErrUnsupportedFormat before anything is written.
// Extraction is not transactional: entries written before a failure stay on disk.
func Extract(ctx context.Context, archivePath string) (dest string, err error) {
	format := DetectFormat(archivePath)
	if format == FormatUnknown {
		return "", &Error{Op: "extract", Path: archivePath, Kind: ErrUnsupportedFormat}
	}
	dest = ExtractedPath(archivePath)

	file, err := os.Open(archivePath)
	if err != nil {
		return dest, extractionError(archivePath, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err = os.MkdirAll(dest, 0o755); err != nil {
		return dest, extractionError(archivePath, err)
	}

	handler := func(ctx context.Context, f archives.FileInfo) error {
		return writeEntry(dest, f)
	}

	switch format {
	case FormatZip:
		err = archives.Zip{}.Extract(ctx, file, handler)
	case FormatTarGz:
		err = extractTarGz(ctx, file, handler)
	}
	if err != nil {
		return dest, extractionError(archivePath, err)
	}
	return dest, nil
}

func extractTarGz(ctx context.Context, r io.Reader, handler archives.FileHandler) error {
	gz, err := archives.Gz{}.OpenReader(r)
	if err != nil {
		return err
	}
	defer func() {
		_ = gz.Close()
	}()
	return archives.Tar{}.Extract(ctx, gz, handler)
}

// safeJoin joins an archive entry name onto dest, refusing names that escape dest.
func safeJoin(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	rel, err := filepath.Rel(dest, target)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("entry %q escapes %s", name, dest)
	}
	return target, nil
}

func writeEntry(dest string, f archives.FileInfo) error {
	target, err := safeJoin(dest, f.NameInArchive)
	if err != nil {
		return err
	}

	if f.IsDir() {
		return os.MkdirAll(target, 0o755)
	}
	if err = os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	if f.Mode()&os.ModeSymlink != 0 {
		linkTarget := f.LinkTarget
		if filepath.IsAbs(linkTarget) {
			return fmt.Errorf("entry %q links to absolute path %s", f.NameInArchive, linkTarget)
		}
		resolved := path.Join(path.Dir(f.NameInArchive), filepath.ToSlash(linkTarget))
		if _, err = safeJoin(dest, resolved); err != nil {
			return err
		}
		return os.Symlink(linkTarget, target)
	}

	if f.LinkTarget != "" {
		// Hard links point at an entry written earlier in the same archive.
		source, err := safeJoin(dest, f.LinkTarget)
		if err != nil {
			return err
		}
		return os.Link(source, target)
	}

	return writeRegularFile(target, f)
}

func writeRegularFile(target string, f archives.FileInfo) error {
	in, err := f.Open()
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	perm := f.Mode().Perm()
	if perm == 0 {
		perm = 0o644
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
