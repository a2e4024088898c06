package fsutils

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/glassexplorer/glassexplorer/pkg/logging"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Decoder decodes
type Decoder interface {
	Decode(o interface{}) error
}

func ReadYAMLFile(filePath string, required bool, o interface{}) (err error) {
	yamlDecoderFactory := func(r io.Reader) Decoder {
		return yaml.NewDecoder(r)
	}
	return ReadFile(filePath, required, o, yamlDecoderFactory)
}

func ReadFile(filePath string, required bool, o interface{}, newDecoder func(r io.Reader) Decoder) (err error) {
	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		if os.IsNotExist(err) && !required {
			err = nil
		}
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logging.L().Warn("failed to close file", zap.String("path", filePath), zap.Error(err))
		}
	}()
	decoder := newDecoder(file)
	if err = decoder.Decode(o); err != nil {
		if err == io.EOF {
			// An empty file leaves defaults untouched.
			return nil
		}
		return err
	}
	return err
}

// ReadFileHead returns at most max bytes from the beginning of a file.
// Reaching the end of a shorter file is not an error.
func ReadFileHead(filePath string, max int) (data []byte, err error) {
	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	data = make([]byte, max)
	n, err := io.ReadFull(file, data)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	return data[:n], err
}

func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err // some other error
	}
	return info.IsDir(), nil
}

// IsDir reports whether path exists and is a directory. Symlinks are followed.
func IsDir(path string) bool {
	isDir, _ := DirExists(path)
	return isDir
}

// ParentDir returns the lexical parent of p.
// The parent of a filesystem root is the root itself.
func ParentDir(p string) string {
	return filepath.Dir(filepath.Clean(p))
}

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}

// ShortenHome replaces the user home prefix with ~ for display.
func ShortenHome(p string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return p
	}
	if p == home {
		return "~"
	}
	if strings.HasPrefix(p, home+string(filepath.Separator)) {
		return "~" + p[len(home):]
	}
	return p
}
