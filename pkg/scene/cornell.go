package scene

import (
	"github.com/cbro/rayer-go/pkg/camera"
	"github.com/cbro/rayer-go/pkg/color"
	"github.com/cbro/rayer-go/pkg/geometry"
	"github.com/cbro/rayer-go/pkg/material"
	"github.com/cbro/rayer-go/pkg/primitive"
	"github.com/cbro/rayer-go/pkg/texture"
)

// NewCornellScene builds the classic Cornell box: five white/red/green
// walls, a ceiling light, and a metal sphere facing a glass sphere.
func NewCornellScene() *Scene {
	const boxSize = 555.0

	white := texture.NewConstant(color.RGB{R: 0.73, G: 0.73, B: 0.73})
	red := texture.NewConstant(color.RGB{R: 0.65, G: 0.05, B: 0.05})
	green := texture.NewConstant(color.RGB{R: 0.12, G: 0.45, B: 0.15})
	light := texture.NewFromMaterial(material.NewDiffuseLight(color.RGB{R: 15, G: 15, B: 15}))

	v := geometry.NewVec3
	var items []geometry.Hitable

	floor := primitive.NewPolygon([]geometry.Vec3{
		v(0, 0, 0), v(boxSize, 0, 0), v(boxSize, 0, boxSize), v(0, 0, boxSize),
	}, v(0, 1, 0), white)
	ceiling := primitive.NewPolygon([]geometry.Vec3{
		v(0, boxSize, boxSize), v(boxSize, boxSize, boxSize), v(boxSize, boxSize, 0), v(0, boxSize, 0),
	}, v(0, -1, 0), white)
	back := primitive.NewPolygon([]geometry.Vec3{
		v(0, 0, boxSize), v(boxSize, 0, boxSize), v(boxSize, boxSize, boxSize), v(0, boxSize, boxSize),
	}, v(0, 0, -1), white)
	left := primitive.NewPolygon([]geometry.Vec3{
		v(0, 0, boxSize), v(0, 0, 0), v(0, boxSize, 0), v(0, boxSize, boxSize),
	}, v(1, 0, 0), red)
	right := primitive.NewPolygon([]geometry.Vec3{
		v(boxSize, 0, 0), v(boxSize, 0, boxSize), v(boxSize, boxSize, boxSize), v(boxSize, boxSize, 0),
	}, v(-1, 0, 0), green)

	for _, tri := range [][]*primitive.Triangle{floor, ceiling, back, left, right} {
		for _, t := range tri {
			items = append(items, t)
		}
	}

	const lightSize, lightOffset = 130.0, (boxSize - 130.0) / 2
	ceilingLight := primitive.NewPolygon([]geometry.Vec3{
		v(lightOffset, boxSize-1, lightOffset), v(lightOffset+lightSize, boxSize-1, lightOffset),
		v(lightOffset+lightSize, boxSize-1, lightOffset+lightSize), v(lightOffset, boxSize-1, lightOffset+lightSize),
	}, v(0, -1, 0), light)
	for _, t := range ceilingLight {
		items = append(items, t)
	}

	metalSphere := primitive.NewStationarySphere(v(185, 82.5, 169), 82.5,
		texture.NewFromMaterial(material.NewMetal(color.RGB{R: 0.8, G: 0.8, B: 0.9}, 0.0)))
	glassSphere := primitive.NewStationarySphere(v(370, 90, 351), 90,
		texture.NewFromMaterial(material.BAF10))
	items = append(items, metalSphere, glassSphere)

	cam := camera.New(
		v(278, 278, -800), v(278, 278, 0), v(0, 1, 0),
		40.0, 1.0, 0.0, 800.0, 0, 1,
	)

	return Build(cam, items, Config{Width: 500, Height: 500, Samples: 200, RenderSky: false})
}
