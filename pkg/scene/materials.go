package scene

import (
	"github.com/cbro/rayer-go/pkg/camera"
	"github.com/cbro/rayer-go/pkg/color"
	"github.com/cbro/rayer-go/pkg/geometry"
	"github.com/cbro/rayer-go/pkg/material"
	"github.com/cbro/rayer-go/pkg/primitive"
	"github.com/cbro/rayer-go/pkg/texture"
)

// NewMaterialShowcaseScene lines up one sphere per material variant —
// matte, rough metal, mirror metal, and the three named dielectric
// glasses — plus an axis-aligned box and an overhead area light, to
// exercise every Material and the Box/Mesh primitive in one frame.
func NewMaterialShowcaseScene() *Scene {
	v := geometry.NewVec3
	var items []geometry.Hitable

	ground := primitive.NewStationarySphere(v(0, -1000, 0), 1000,
		texture.NewConstant(color.RGB{R: 0.6, G: 0.6, B: 0.6}))
	items = append(items, ground)

	matte := primitive.NewStationarySphere(v(-4, 1, 0), 1,
		texture.NewConstant(color.RGB{R: 0.7, G: 0.2, B: 0.2}))
	roughMetal := primitive.NewStationarySphere(v(-2, 1, 0), 1,
		texture.NewFromMaterial(material.NewMetal(color.RGB{R: 0.8, G: 0.8, B: 0.8}, 0.4)))
	mirror := primitive.NewStationarySphere(v(0, 1, 0), 1,
		texture.NewFromMaterial(material.NewMetal(color.RGB{R: 0.9, G: 0.9, B: 0.9}, 0.0)))
	baf10 := primitive.NewStationarySphere(v(2, 1, 0), 1, texture.NewFromMaterial(material.BAF10))
	sf11 := primitive.NewStationarySphere(v(4, 1, 0), 1, texture.NewFromMaterial(material.SF11))
	sf66 := primitive.NewStationarySphere(v(6, 1, 0), 1, texture.NewFromMaterial(material.SF66))
	items = append(items, matte, roughMetal, mirror, baf10, sf11, sf66)

	box := primitive.NewBox(v(-1, 0, 3), v(1, 1.5, 4.5),
		texture.NewConstant(color.RGB{R: 0.3, G: 0.5, B: 0.8}))
	items = append(items, box)

	light := texture.NewFromMaterial(material.NewDiffuseLight(color.RGB{R: 8, G: 8, B: 8}))
	lightPanel := primitive.NewPolygon([]geometry.Vec3{
		v(-6, 8, -3), v(8, 8, -3), v(8, 8, 8), v(-6, 8, 8),
	}, v(0, -1, 0), light)
	for _, t := range lightPanel {
		items = append(items, t)
	}

	cam := camera.New(v(0, 3, -12), v(1, 1, 2), v(0, 1, 0), 35.0, 16.0/9.0, 0.0, 14.0, 0, 1)

	return Build(cam, items, Config{Width: 640, Height: 360, Samples: 150, RenderSky: true})
}
