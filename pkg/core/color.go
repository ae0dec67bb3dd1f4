package core

import "math"

// Color is a linear RGB triple. Components are nominally in [0,1] but may
// exceed that range while light is accumulated.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the zero color
var Black = Color{}

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyVec returns the component-wise (Hadamard) product, used to filter
// light intensity through per-channel material coefficients
func (c Color) MultiplyVec(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns a color with components clamped to [min, max]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// RGB8 converts each channel with round(clamp(c,0,1)*255)
func (c Color) RGB8() (r, g, b uint8) {
	toByte := func(v float64) uint8 {
		return uint8(math.Round(max(0, min(1, v)) * 255))
	}
	return toByte(c.R), toByte(c.G), toByte(c.B)
}
