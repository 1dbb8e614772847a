package scene

import (
	"github.com/cbro/rayer-go/pkg/camera"
	"github.com/cbro/rayer-go/pkg/color"
	"github.com/cbro/rayer-go/pkg/geometry"
	"github.com/cbro/rayer-go/pkg/material"
	"github.com/cbro/rayer-go/pkg/primitive"
	"github.com/cbro/rayer-go/pkg/texture"
)

// NewSphereFieldScene builds a ground plane of diffuse spheres with a
// grid of small spheres on top, one of which moves across the shutter
// interval to exercise motion blur, under a sky gradient.
func NewSphereFieldScene() *Scene {
	v := geometry.NewVec3
	var items []geometry.Hitable

	ground := primitive.NewStationarySphere(v(0, -1000, 0), 1000,
		texture.NewConstant(color.RGB{R: 0.5, G: 0.5, B: 0.5}))
	items = append(items, ground)

	glass := primitive.NewStationarySphere(v(0, 1, 0), 1.0, texture.NewFromMaterial(material.BAF10))
	diffuse := primitive.NewStationarySphere(v(-4, 1, 0), 1.0,
		texture.NewConstant(color.RGB{R: 0.4, G: 0.2, B: 0.1}))
	metal := primitive.NewStationarySphere(v(4, 1, 0), 1.0,
		texture.NewFromMaterial(material.NewMetal(color.RGB{R: 0.7, G: 0.6, B: 0.5}, 0.0)))
	items = append(items, glass, diffuse, metal)

	moving := primitive.NewMovingSphere(v(-2, 0.4, 2), v(-2, 0.9, 2), 0, 1, 0.4,
		texture.NewConstant(color.RGB{R: 0.8, G: 0.3, B: 0.3}))
	items = append(items, moving)

	for a := -6; a < 6; a++ {
		for b := -6; b < 6; b++ {
			center := v(float64(a)+0.5, 0.2, float64(b)+0.5)
			if center.Subtract(v(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}
			small := texture.NewConstant(color.RGB{
				R: 0.3 + 0.5*float32((a+6)%3)/3,
				G: 0.3 + 0.5*float32((b+6)%3)/3,
				B: 0.5,
			})
			items = append(items, primitive.NewStationarySphere(center, 0.2, small))
		}
	}

	cam := camera.New(v(13, 2, 3), v(0, 0, 0), v(0, 1, 0), 20.0, 16.0/9.0, 0.1, 10.0, 0, 1)

	return Build(cam, items, Config{Width: 640, Height: 360, Samples: 100, RenderSky: true})
}
