package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// Convert from OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	// Cube the values
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// Convert LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	r = math.Max(0, math.Min(1, r))
	g = math.Max(0, math.Min(1, g))
	blue = math.Max(0, math.Min(1, blue))

	return core.NewColor(r, g, blue)
}

// NewSphereGridScene creates a grid of glossy spheres whose hue varies
// across x and chroma across z, seen from above and in front
func NewSphereGridScene() *Scene {
	width, height := 800, 450
	eye := core.NewVec3(0, 6, -9)

	s := &Scene{
		Frame: NewLookAtFrame(FrameConfig{
			Eye:         eye,
			LookAt:      core.NewVec3(0, 0.5, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        40.0,
			AspectRatio: float64(width) / float64(height),
		}),
		Camera:  eye,
		Width:   width,
		Height:  height,
		Ambient: core.NewColor(0.08, 0.08, 0.08),
	}

	s.Lights = append(s.Lights,
		lights.NewPointLight(core.NewVec3(-6, 12, -6), core.NewColor(0.8, 0.78, 0.7), core.NewColor(1, 1, 1)),
		lights.NewPointLight(core.NewVec3(8, 6, -2), core.NewColor(0.2, 0.2, 0.25), core.NewColor(0.3, 0.3, 0.3)),
	)

	// Ground is a huge sphere whose top sits at y = 0
	ground := material.NewPhong(
		core.NewColor(0.4, 0.4, 0.4),
		core.NewColor(0.5, 0.5, 0.5),
		core.NewColor(0.1, 0.1, 0.1),
		core.NewColor(0.15, 0.15, 0.15),
		8,
	)
	s.Spheres = append(s.Spheres, geometry.NewSphere(core.NewVec3(0, -10000, 0), 10000, core.Black, ground))

	gridSize := 8

	// Fit the grid into a fixed footprint
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)

	sphereRadius := spacing * 0.35
	sphereRadius = math.Max(0.02, math.Min(0.5, sphereRadius))

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0
			z := float64(j)*spacing - targetArea/2.0
			position := core.NewVec3(x, sphereRadius, z)

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			// Vary the mirror term so neighbouring spheres differ
			mirror := 0.2 + 0.2*float64((i+j)%3)/2.0
			mat := material.NewPhong(
				color.Multiply(0.5),
				color,
				core.NewColor(0.7, 0.7, 0.7),
				core.NewColor(mirror, mirror, mirror),
				96,
			)

			s.Spheres = append(s.Spheres, geometry.NewSphere(position, sphereRadius, color.Multiply(0.05), mat))
		}
	}

	return s
}
