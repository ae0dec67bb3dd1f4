package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight is an infinitesimal light with no distance attenuation
type PointLight struct {
	Location core.Vec3
	Diffuse  core.Color // Intensity seen by diffuse surfaces
	Specular core.Color // Intensity seen by specular highlights
}

// NewPointLight creates a new point light
func NewPointLight(location core.Vec3, diffuse, specular core.Color) PointLight {
	return PointLight{
		Location: location,
		Diffuse:  diffuse,
		Specular: specular,
	}
}

// ToLight returns the unnormalized vector from point to the light. A shadow
// ray along it reaches the light at t = 1.
func (l PointLight) ToLight(point core.Vec3) core.Vec3 {
	return l.Location.Subtract(point)
}
