package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// PixelToPoint maps pixel (x, y), displaced by a sub-pixel offset, onto the
// image plane by bilinear interpolation of the frame corners
func PixelToPoint(s *scene.Scene, x, y int, offset Offset) core.Vec3 {
	alpha := float64(x)/float64(s.Width-1) + offset.DX/float64(s.Width)
	beta := float64(y)/float64(s.Height-1) + offset.DY/float64(s.Height)

	top := s.Frame.TopLeft.Lerp(s.Frame.TopRight, alpha)
	bottom := s.Frame.BottomLeft.Lerp(s.Frame.BottomRight, alpha)
	return top.Lerp(bottom, beta)
}

// PrimaryRay returns the camera ray through a sample of pixel (x, y). The
// direction is normalized, so this panics if the sample point coincides with
// the camera.
func PrimaryRay(s *scene.Scene, x, y int, offset Offset) core.Ray {
	point := PixelToPoint(s, x, y, offset)
	return core.NewRay(s.Camera, point.Subtract(s.Camera).Normalize())
}
