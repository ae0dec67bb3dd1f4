package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Color    core.Color // Base color, in [0,1]
	Material material.Phong
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Color, mat material.Phong) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Color:    color,
		Material: mat,
	}
}

// Intersect returns the nearest positive t at which the ray meets the sphere.
// Roots at or behind the ray origin are discarded; ok is false when none remain.
func Intersect(ray core.Ray, s Sphere) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	tMinus := (-b - sqrtD) / (2 * a)
	tPlus := (-b + sqrtD) / (2 * a)

	// Try the closer root first
	if tMinus > 0 {
		return tMinus, true
	}
	if tPlus > 0 {
		return tPlus, true
	}
	return 0, false
}

// Hit tests the ray against this sphere
func (s Sphere) Hit(ray core.Ray) (float64, bool) {
	return Intersect(ray, s)
}

// SurfaceNormal returns the outward unit normal at a point on the surface
func (s Sphere) SurfaceNormal(p core.Vec3) core.Vec3 {
	return p.Subtract(s.Center).Normalize()
}
