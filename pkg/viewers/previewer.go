// Package viewers produces short textual previews of filesystem paths.
package viewers

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/glassexplorer/glassexplorer/pkg/fsutils"
	"golang.org/x/text/encoding/unicode"
)

// MaxPreviewChars caps the number of characters a text preview holds.
const MaxPreviewChars = 300

const (
	directoryMarker   = "[directorio]"
	unreadableMessage = "<No se puede previsualizar este archivo>"
)

// Kind tags the variant held by a Result.
type Kind int

const (
	KindDirectory Kind = iota
	KindText
	KindUnreadable
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindText:
		return "text"
	case KindUnreadable:
		return "unreadable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the preview of one path. Only the field matching Kind is meaningful:
// Path for directories, Text for text, Reason for unreadable paths.
type Result struct {
	Kind   Kind
	Path   string
	Text   string
	Reason string
}

func Directory(path string) Result {
	return Result{Kind: KindDirectory, Path: path}
}

func Text(text string) Result {
	return Result{Kind: KindText, Text: text}
}

func Unreadable(reason string) Result {
	return Result{Kind: KindUnreadable, Reason: reason}
}

// String renders the result for display.
func (r Result) String() string {
	switch r.Kind {
	case KindDirectory:
		return directoryMarker + "\n" + r.Path
	case KindText:
		return r.Text
	default:
		return unreadableMessage
	}
}

var (
	readFileHead = fsutils.ReadFileHead
	osStat       = os.Stat
)

// Preview inspects path as it is on disk right now.
// Files always yield Text or Unreadable; read failures never escape as errors.
func Preview(path string) Result {
	return PreviewN(path, MaxPreviewChars)
}

// PreviewN is Preview with a caller-chosen character cap.
func PreviewN(path string, maxChars int) Result {
	if fsutils.IsDir(path) {
		return Directory(path)
	}
	// Opening a FIFO or device blocks, so only regular files are read.
	info, err := osStat(path)
	if err != nil {
		return Unreadable(err.Error())
	}
	if !info.Mode().IsRegular() {
		return Unreadable(fmt.Sprintf("%s is not a regular file", path))
	}
	if maxChars <= 0 {
		maxChars = MaxPreviewChars
	}
	// Enough bytes for maxChars characters even if all of them are 4 bytes long.
	data, err := readFileHead(path, maxChars*utf8.UTFMax)
	if err != nil {
		return Unreadable(err.Error())
	}
	text, err := decodeText(data)
	if err != nil {
		return Unreadable(err.Error())
	}
	return Text(truncateChars(text, maxChars))
}

// decodeText decodes UTF-8, replacing invalid sequences with U+FFFD and dropping a leading BOM.
func decodeText(data []byte) (string, error) {
	decoded, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func truncateChars(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}
