// Package loaders contains the renderer's external collaborators:
// on-disk image decoding for textures and Wavefront OBJ mesh parsing.
// Neither is part of the core, and both wrap errors with pkg/errors so
// callers get a Cause()-walkable chain.
package loaders

import (
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/pkg/errors"

	"github.com/cbro/rayer-go/pkg/color"
)

// ImageData is a decoded 8-bit sRGB image, row-major top-to-bottom.
type ImageData struct {
	Width  int
	Height int
	Pixels []color.RGB
}

// LoadImage decodes a PNG, JPEG or WebP file into an ImageData. The
// .webp extension routes to nativewebp since it has no stdlib registry
// hook; everything else goes through image.Decode's format sniffing.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "opening image file")
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(filename), ".webp") {
		img, err := nativewebp.Decode(file)
		if err != nil {
			return nil, errors.Wrap(err, "decoding webp image")
		}
		return toImageData(img), nil
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrap(err, "decoding image")
	}
	return toImageData(img), nil
}

func toImageData(img image.Image) *ImageData {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]color.RGB, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = color.RGB{
				R: float32(r) / 65535.0,
				G: float32(g) / 65535.0,
				B: float32(b) / 65535.0,
			}
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}
}
