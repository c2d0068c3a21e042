package canvas

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.png")
	writePNG(t, path, 60, 100)

	w, h, err := Dimensions(path)
	if err != nil {
		t.Fatalf("Dimensions failed: %v", err)
	}
	if w != 60 || h != 100 {
		t.Fatalf("dimensions = %dx%d, want 60x100", w, h)
	}
}

func TestDimensionsUnreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.jpg")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Dimensions(path)
	if !errors.Is(err, ErrImageUnreadable) {
		t.Fatalf("err = %v, want ErrImageUnreadable", err)
	}
}

func TestDimensionsMissingFile(t *testing.T) {
	if _, _, err := Dimensions(filepath.Join(t.TempDir(), "nope.jpg")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
}
