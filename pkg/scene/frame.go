package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// FrameConfig places an image plane in front of an eye, the way a pinhole
// camera would
type FrameConfig struct {
	Eye         core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the frame is centered on, as seen from Eye
	Up          core.Vec3 // Up direction
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Width / height
	Distance    float64   // Eye to image plane distance (0 = 1)
}

// NewLookAtFrame builds the four frame corners for a camera at cfg.Eye
// looking toward cfg.LookAt
func NewLookAtFrame(cfg FrameConfig) Frame {
	distance := cfg.Distance
	if distance == 0 {
		distance = 1
	}

	halfHeight := math.Tan(cfg.VFov*math.Pi/360.0) * distance
	halfWidth := halfHeight * cfg.AspectRatio

	forward := cfg.LookAt.Subtract(cfg.Eye).Normalize()
	right := cfg.Up.Cross(forward).Normalize()
	up := forward.Cross(right)

	center := cfg.Eye.Add(forward.Multiply(distance))
	h := right.Multiply(halfWidth)
	v := up.Multiply(halfHeight)

	return Frame{
		TopRight:    center.Add(h).Add(v),
		TopLeft:     center.Subtract(h).Add(v),
		BottomRight: center.Add(h).Subtract(v),
		BottomLeft:  center.Subtract(h).Subtract(v),
	}
}
