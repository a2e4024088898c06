package viewers

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ImageExtensions are the suffixes offered for text art rendering.
var ImageExtensions = []string{".jpg", ".png", ".gif", ".bmp"}

// IsImageFile matches ImageExtensions case-insensitively.
func IsImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, imageExt := range ImageExtensions {
		if ext == imageExt {
			return true
		}
	}
	return false
}

// ImageMeta describes an image without decoding its pixels.
type ImageMeta struct {
	Format string
	Width  int
	Height int
}

func (m ImageMeta) String() string {
	return fmt.Sprintf("%s %dx%d", m.Format, m.Width, m.Height)
}

func GetImageMeta(path string) (meta ImageMeta, err error) {
	f, err := os.Open(path)
	if err != nil {
		return meta, err
	}
	defer func() {
		_ = f.Close()
	}()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return meta, err
	}
	return ImageMeta{
		Format: strings.ToUpper(format),
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
