package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates three mirror-finished spheres resting on a ground
// sphere, lit by two white point lights. The frame is the 4:3 plane z = 0
// with the camera one unit behind it.
func NewDefaultScene() *Scene {
	s := &Scene{
		Frame:   NewCenteredFrame(core.NewVec3(0, 0, 0), 2.0, 1.5),
		Camera:  core.NewVec3(0, 0, -1),
		Width:   640,
		Height:  480,
		Ambient: core.NewColor(0.1, 0.1, 0.1),
	}

	// Create materials
	glossyRed := material.NewPhong(
		core.NewColor(0.6, 0.1, 0.1),
		core.NewColor(0.7, 0.1, 0.1),
		core.NewColor(0.6, 0.6, 0.6),
		core.NewColor(0.25, 0.25, 0.25),
		64,
	)
	glossyBlue := material.NewPhong(
		core.NewColor(0.1, 0.1, 0.5),
		core.NewColor(0.1, 0.2, 0.7),
		core.NewColor(0.8, 0.8, 0.8),
		core.NewColor(0.3, 0.3, 0.3),
		128,
	)
	chrome := material.NewPhong(
		core.NewColor(0.1, 0.1, 0.1),
		core.NewColor(0.1, 0.1, 0.1),
		core.NewColor(1.0, 1.0, 1.0),
		core.NewColor(0.8, 0.8, 0.8),
		256,
	)
	matteGround := material.NewPhong(
		core.NewColor(0.3, 0.3, 0.2),
		core.NewColor(0.5, 0.5, 0.4),
		core.NewColor(0.05, 0.05, 0.05),
		core.NewColor(0.1, 0.1, 0.1),
		4,
	)

	s.Spheres = append(s.Spheres,
		geometry.NewSphere(core.NewVec3(0, -0.25, 3), 0.75, core.NewColor(0.1, 0.0, 0.0), glossyRed),
		geometry.NewSphere(core.NewVec3(1.6, 0, 4), 1.0, core.NewColor(0.0, 0.0, 0.1), glossyBlue),
		geometry.NewSphere(core.NewVec3(-1.6, 0, 4), 1.0, core.Black, chrome),
		geometry.NewSphere(core.NewVec3(0, -1001, 4), 1000, core.NewColor(0.05, 0.05, 0.0), matteGround),
	)

	s.Lights = append(s.Lights,
		lights.NewPointLight(core.NewVec3(3, 4, -1), core.NewColor(0.7, 0.7, 0.7), core.NewColor(0.8, 0.8, 0.8)),
		lights.NewPointLight(core.NewVec3(-4, 3, 1), core.NewColor(0.3, 0.3, 0.35), core.NewColor(0.4, 0.4, 0.4)),
	)

	return s
}

// NewSingleSphereScene creates a unit sphere at (0,0,2) in front of a camera
// at the origin looking down +z. It has no lights, so every visible point is
// the sphere's base color plus the ambient term.
func NewSingleSphereScene(width, height int, base core.Color) *Scene {
	flat := material.NewPhong(core.NewColor(1, 1, 1), core.Black, core.Black, core.Black, 1)

	return &Scene{
		Frame:   NewCenteredFrame(core.NewVec3(0, 0, 1), 2.0, 2.0),
		Camera:  core.NewVec3(0, 0, 0),
		Width:   width,
		Height:  height,
		Ambient: core.NewColor(0.1, 0.1, 0.1),
		Spheres: []geometry.Sphere{
			geometry.NewSphere(core.NewVec3(0, 0, 2), 1.0, base, flat),
		},
	}
}
