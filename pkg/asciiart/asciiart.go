// Package asciiart renders images as a grid of characters picked by luminance.
package asciiart

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Palette runs from dark to light; a pixel p maps to Palette[p/25].
const Palette = "@%#*+=-:. "

// DefaultWidth is the number of columns used when none is configured.
const DefaultWidth = 40

// Render decodes the image at path and renders it width characters wide.
func Render(path string, width int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = f.Close()
	}()
	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return RenderImage(img, width), nil
}

// RenderImage converts img to grayscale, resizes it to width columns and half
// the proportional number of rows, and emits one line per row.
func RenderImage(img image.Image, width int) string {
	bounds := img.Bounds()
	if width <= 0 || bounds.Empty() {
		return ""
	}
	height := Height(bounds.Dx(), bounds.Dy(), width)

	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)

	scaled := gray
	if bounds.Dx() != width || bounds.Dy() != height {
		scaled = image.NewGray(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), gray, bounds, draw.Src, nil)
	}

	var sb strings.Builder
	sb.Grow((width + 1) * height)
	rect := scaled.Bounds()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			sb.WriteByte(charFor(scaled.GrayAt(x, y).Y))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Height is int(width*h/w/2), never less than one row.
func Height(imgWidth, imgHeight, width int) int {
	height := int(float64(width) * float64(imgHeight) / float64(imgWidth) / 2)
	if height < 1 {
		return 1
	}
	return height
}

func charFor(p uint8) byte {
	i := int(p) / 25
	if i >= len(Palette) {
		// 250..255 fall past the last slot
		i = len(Palette) - 1
	}
	return Palette[i]
}
