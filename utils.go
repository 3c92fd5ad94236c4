package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/transforms/scene"
	. "github.com/quasilyte/gmath"
	"image/color"
)

func rgbaOf(rgba uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8((rgba >> 24) & 0xff),
		G: uint8((rgba >> 16) & 0xff),
		B: uint8((rgba >> 8) & 0xff),
		A: uint8((rgba >> 0) & 0xff),
	}
}

func imageSizeOf(image *ebiten.Image) Vec {
	return Vec{
		X: float64(image.Bounds().Dx()),
		Y: float64(image.Bounds().Dy()),
	}
}

// spriteGeoM maps the unit square onto the drawable, centered on its position.
func spriteGeoM(d *scene.Drawable) ebiten.GeoM {
	size := d.DrawSize()
	pos := d.DrawPosition()

	var tr ebiten.GeoM
	tr.Translate(-0.5, -0.5)
	tr.Scale(size.X, size.Y)
	tr.Rotate(d.Rotation)
	tr.Translate(pos.X, pos.Y)

	return tr
}
