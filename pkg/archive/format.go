// Package archive compresses a path into a zip file and extracts zip and gzip tar archives.
package archive

import (
	"path/filepath"
	"strings"
)

// Format is the archive kind recognised from a file suffix.
type Format int

const (
	FormatUnknown Format = iota
	FormatZip
	// FormatTarGz covers both ".tar" and ".tar.gz"; the stream is always read as gzip.
	FormatTarGz
)

func (f Format) String() string {
	switch f {
	case FormatZip:
		return "zip"
	case FormatTarGz:
		return "tar.gz"
	default:
		return "unknown"
	}
}

// ExtractedDirSuffix is appended to the archive stem to name the extraction directory.
const ExtractedDirSuffix = "_extraido"

// DetectFormat dispatches on the path suffix. Matching is case-sensitive.
func DetectFormat(archivePath string) Format {
	switch {
	case strings.HasSuffix(archivePath, ".zip"):
		return FormatZip
	case strings.HasSuffix(archivePath, ".tar.gz"), strings.HasSuffix(archivePath, ".tar"):
		return FormatTarGz
	default:
		return FormatUnknown
	}
}

// CompressedPath is where Compress writes the archive for src.
func CompressedPath(src string) string {
	return filepath.Clean(src) + ".zip"
}

// ExtractedPath is the directory Extract writes into: the archive path without
// its last extension plus ExtractedDirSuffix, so "x.tar.gz" maps to "x.tar_extraido".
func ExtractedPath(archivePath string) string {
	return strings.TrimSuffix(archivePath, filepath.Ext(archivePath)) + ExtractedDirSuffix
}
