package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// HitRecord identifies the nearest sphere along a ray. Index points into the
// slice that was searched and is the sphere's identity during shading.
type HitRecord struct {
	Index int
	T     float64
	Point core.Vec3
}

// Nearest tests the ray against every sphere and returns the closest hit
func Nearest(ray core.Ray, spheres []Sphere) (HitRecord, bool) {
	closest := HitRecord{Index: -1}
	hitAnything := false

	for i := range spheres {
		t, ok := Intersect(ray, spheres[i])
		if !ok {
			continue
		}
		if !hitAnything || t < closest.T {
			closest.Index = i
			closest.T = t
			hitAnything = true
		}
	}

	if hitAnything {
		closest.Point = ray.At(closest.T)
	}
	return closest, hitAnything
}

// Occluded reports whether any sphere other than skip is hit strictly between
// t = 0 and t = 1. Pass skip = -1 to test every sphere.
func Occluded(ray core.Ray, spheres []Sphere, skip int) bool {
	for i := range spheres {
		if i == skip {
			continue
		}
		if t, ok := Intersect(ray, spheres[i]); ok && t < 1 {
			return true
		}
	}
	return false
}
