package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Frame holds the four world-space corners of the image plane. TopLeft is
// what appears at pixel (0,0), BottomRight at (width-1, height-1).
type Frame struct {
	TopRight    core.Vec3
	TopLeft     core.Vec3
	BottomRight core.Vec3
	BottomLeft  core.Vec3
}

// Scene contains all the elements needed for rendering. It is built once and
// must not be mutated while a render is running.
type Scene struct {
	Frame   Frame
	Camera  core.Vec3 // Eye position; primary rays start here
	Width   int       // Image width in pixels
	Height  int       // Image height in pixels
	Ambient core.Color
	Spheres []geometry.Sphere // Index in this slice is the sphere's identity
	Lights  []lights.PointLight
}

// NewFrame builds a frame from its corners
func NewFrame(topRight, topLeft, bottomRight, bottomLeft core.Vec3) Frame {
	return Frame{
		TopRight:    topRight,
		TopLeft:     topLeft,
		BottomRight: bottomRight,
		BottomLeft:  bottomLeft,
	}
}

// NewCenteredFrame builds an axis-aligned frame of the given size centered at
// center, lying in the plane z = center.Z with +y up and +x to the right.
func NewCenteredFrame(center core.Vec3, width, height float64) Frame {
	hw, hh := width/2, height/2
	return Frame{
		TopRight:    center.Add(core.NewVec3(hw, hh, 0)),
		TopLeft:     center.Add(core.NewVec3(-hw, hh, 0)),
		BottomRight: center.Add(core.NewVec3(hw, -hh, 0)),
		BottomLeft:  center.Add(core.NewVec3(-hw, -hh, 0)),
	}
}

// GetPrimitiveCount returns the number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Spheres)
}
