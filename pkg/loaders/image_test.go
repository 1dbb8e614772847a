package loaders

import (
	"image"
	stdcolor "image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/cbro/rayer-go/pkg/color"
)

func TestLoadImagePNGReadsPixelsRowMajor(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.png")

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, stdcolor.RGBA{R: 255, G: 255, B: 255, A: 255}) // top-left: white
	img.Set(1, 0, stdcolor.RGBA{R: 255, G: 0, B: 0, A: 255})     // top-right: red
	img.Set(0, 1, stdcolor.RGBA{R: 0, G: 255, B: 0, A: 255})     // bottom-left: green
	img.Set(1, 1, stdcolor.RGBA{R: 0, G: 0, B: 255, A: 255})     // bottom-right: blue

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		t.Fatalf("failed to encode PNG: %v", err)
	}
	f.Close()

	imageData, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if imageData.Width != 2 || imageData.Height != 2 {
		t.Errorf("expected 2x2 image, got %dx%d", imageData.Width, imageData.Height)
	}
	if len(imageData.Pixels) != 4 {
		t.Fatalf("expected 4 pixels, got %d", len(imageData.Pixels))
	}

	checkColor := func(name string, got, want color.RGB) {
		const tolerance = 0.01
		if abs32(got.R-want.R) > tolerance || abs32(got.G-want.G) > tolerance || abs32(got.B-want.B) > tolerance {
			t.Errorf("%s: want %+v, got %+v", name, want, got)
		}
	}

	checkColor("top-left", imageData.Pixels[0], color.RGB{R: 1, G: 1, B: 1})
	checkColor("top-right", imageData.Pixels[1], color.RGB{R: 1, G: 0, B: 0})
	checkColor("bottom-left", imageData.Pixels[2], color.RGB{R: 0, G: 1, B: 0})
	checkColor("bottom-right", imageData.Pixels[3], color.RGB{R: 0, G: 0, B: 1})
}

func TestLoadImageMissingFileReturnsError(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestLoadImageMissingWebpFileReturnsError(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "missing.webp"))
	if err == nil {
		t.Error("expected error for missing webp file, got nil")
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
