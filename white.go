package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"image"
	"image/color"
)

// whiteImage is a single white pixel, scaled and tinted to draw sprites.
var whiteImage *ebiten.Image

func init() {
	// use the center of a larger image so filtering never samples the border
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}
