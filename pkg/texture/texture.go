// Package texture implements geometry.Texture: constant reflectance
// sources and 8-bit image-backed lookups, both wrapping a Lambertian
// material at the sampled point.
package texture

import (
	"math"

	"github.com/cbro/rayer-go/pkg/color"
	"github.com/cbro/rayer-go/pkg/geometry"
	"github.com/cbro/rayer-go/pkg/material"
)

// Constant is a texture that returns the same Lambertian material
// everywhere, built from any reflectance source.
type Constant struct {
	lambertian *material.Lambertian
}

// NewConstant builds a Constant texture from a reflectance source.
func NewConstant(source color.HasReflectance) *Constant {
	return &Constant{lambertian: material.NewLambertian(source)}
}

// Value always returns the same underlying Lambertian.
func (c *Constant) Value(uv geometry.Vec2) geometry.Material {
	return c.lambertian
}

var _ geometry.Texture = (*Constant)(nil)

// FromMaterial wraps any Material so it can be attached directly to a
// primitive's Texture field, always returning itself regardless of uv —
// the Go equivalent of the blanket Material-as-Texture conversion the
// renderer this was ported from provides for any Clone+Material type.
// Used to attach Metal, Dielectric and DiffuseLight, none of which go
// through the albedo-wrapping Constant/Image lookups above.
type FromMaterial struct {
	material geometry.Material
}

// NewFromMaterial builds a texture that always resolves to m.
func NewFromMaterial(m geometry.Material) *FromMaterial {
	return &FromMaterial{material: m}
}

// Value always returns the wrapped material.
func (f *FromMaterial) Value(uv geometry.Vec2) geometry.Material {
	return f.material
}

var _ geometry.Texture = (*FromMaterial)(nil)

// gammaDecode approximates the sRGB-to-linear transfer function with a
// flat gamma-2.2 curve, matching the renderer this was ported from.
func gammaDecode(c float32) float32 {
	return float32(math.Pow(float64(c), 2.2))
}

// Image is an 8-bit RGB image sampled by (u,v), converted from sRGB to
// linear and wrapped in a fresh Lambertian per lookup.
type Image struct {
	Width, Height int
	Pixels        []color.RGB // row-major, Pixels[y*Width+x], raw sRGB in [0,1]
}

// NewImage builds an Image texture from 8-bit-per-channel sRGB pixels
// already normalized to [0,1].
func NewImage(width, height int, srgbPixels []color.RGB) *Image {
	pixels := make([]color.RGB, len(srgbPixels))
	copy(pixels, srgbPixels)
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// Value maps (u,v) to a pixel via i=clamp(floor(u*W),0,W-1),
// j=clamp(floor((1-v)*H-0.001),0,H-1), gamma-decodes it from sRGB to
// linear, and wraps the result in a Lambertian.
func (img *Image) Value(uv geometry.Vec2) geometry.Material {
	i := clampIndex(int(math.Floor(uv.X*float64(img.Width))), img.Width)
	j := clampIndex(int(math.Floor((1-uv.Y)*float64(img.Height)-0.001)), img.Height)
	pixel := img.Pixels[j*img.Width+i]
	linear := color.RGB{R: gammaDecode(pixel.R), G: gammaDecode(pixel.G), B: gammaDecode(pixel.B)}
	return material.NewLambertian(linear)
}

func clampIndex(i, size int) int {
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}

var _ geometry.Texture = (*Image)(nil)
