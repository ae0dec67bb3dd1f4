package core

import (
	"image"
	"image/color"
)

// Grid is a width x height raster of linear colors, stored row-major with
// (0,0) at the top-left.
type Grid struct {
	Width  int
	Height int
	Pixels []Color
}

// NewGrid allocates a black grid
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// At returns the color at pixel (x, y)
func (g *Grid) At(x, y int) Color {
	return g.Pixels[y*g.Width+x]
}

// Set stores the color at pixel (x, y)
func (g *Grid) Set(x, y int, c Color) {
	g.Pixels[y*g.Width+x] = c
}

// Image converts the grid to 8-bit RGBA
func (g *Grid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			r, gr, b := g.At(x, y).RGB8()
			img.SetRGBA(x, y, color.RGBA{R: r, G: gr, B: b, A: 255})
		}
	}
	return img
}
