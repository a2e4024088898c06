package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Compress writes src into src+".zip" using Deflate.
// A directory contributes every file beneath it, named relative to the directory's parent
// so the top-level name is kept; a file contributes one entry under its base name.
// A partially written archive is left in place on failure.
func Compress(ctx context.Context, src string) (dest string, err error) {
	src = filepath.Clean(src)
	dest = CompressedPath(src)

	info, err := os.Stat(src)
	if err != nil {
		return dest, compressionError(src, err)
	}
	if !info.IsDir() && !info.Mode().IsRegular() {
		return dest, compressionError(src, fmt.Errorf("%s is not a regular file", src))
	}

	out, err := os.Create(dest)
	if err != nil {
		return dest, compressionError(src, err)
	}
	zw := zip.NewWriter(out)
	defer func() {
		if closeErr := zw.Close(); closeErr != nil && err == nil {
			err = compressionError(src, closeErr)
		}
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = compressionError(src, closeErr)
		}
	}()

	if !info.IsDir() {
		if err = addFile(zw, src, filepath.Base(src)); err != nil {
			return dest, compressionError(src, err)
		}
		return dest, nil
	}

	base := filepath.Dir(src)
	walkErr := filepath.WalkDir(src, func(filePath string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		mode := d.Type()
		if mode&fs.ModeSymlink != 0 {
			// Links are followed; links to directories are not descended into.
			target, statErr := os.Stat(filePath)
			if statErr != nil {
				return statErr
			}
			mode = target.Mode()
		}
		// Pipes, sockets and devices are skipped: opening them can block.
		if !mode.IsRegular() {
			return nil
		}
		name, relErr := filepath.Rel(base, filePath)
		if relErr != nil {
			return relErr
		}
		return addFile(zw, filePath, filepath.ToSlash(name))
	})
	if walkErr != nil {
		return dest, compressionError(src, walkErr)
	}
	return dest, nil
}

func addFile(zw *zip.Writer, filePath, name string) error {
	in, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()
	info, err := in.Stat()
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate
	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, in)
	return err
}
