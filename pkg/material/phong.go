package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Phong holds per-channel reflectance coefficients for the Phong
// illumination model plus a mirror reflectivity term
type Phong struct {
	Ambient      core.Color // Scales the scene's ambient light
	Diffuse      core.Color // Lambertian response to each light
	Specular     core.Color // Highlight response to each light
	Reflectivity core.Color // Weight of the mirror-reflected ray
	Shininess    int        // Phong exponent; larger is a tighter highlight
}

// NewPhong creates a new Phong material
func NewPhong(ambient, diffuse, specular, reflectivity core.Color, shininess int) Phong {
	return Phong{
		Ambient:      ambient,
		Diffuse:      diffuse,
		Specular:     specular,
		Reflectivity: reflectivity,
		Shininess:    shininess,
	}
}

// IsReflective reports whether any channel reflects light
func (m Phong) IsReflective() bool {
	return m.Reflectivity.R > 0 || m.Reflectivity.G > 0 || m.Reflectivity.B > 0
}
