package canvas

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Dimensions returns the native pixel width and height of the image file at
// path without decoding the full pixel data. Unreadable or unsupported
// images report ErrImageUnreadable.
func Dimensions(path string) (w, h int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("canvas: probing %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("canvas: probing %s: %w", filepath.Base(path), ErrImageUnreadable)
	}
	return cfg.Width, cfg.Height, nil
}
