package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Tracer returns the color seen along a ray
type Tracer interface {
	Trace(direction, origin core.Vec3, depth int) core.Color
}

// Raytracer shades rays with Phong lighting, hard shadows and mirror
// reflection. It only reads the scene and is safe for concurrent use.
type Raytracer struct {
	scene  *scene.Scene
	config RenderConfig
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene, config RenderConfig) *Raytracer {
	return &Raytracer{
		scene:  s,
		config: config,
	}
}

// Trace returns the color for a ray, following mirror reflections until
// depth runs out. Depth 0 is always black. The result is not clamped.
func (rt *Raytracer) Trace(direction, origin core.Vec3, depth int) core.Color {
	if depth <= 0 {
		return core.Black
	}

	hit, isHit := geometry.Nearest(core.NewRay(origin, direction), rt.scene.Spheres)
	if !isHit {
		return core.Black
	}

	sphere := &rt.scene.Spheres[hit.Index]
	normal := sphere.SurfaceNormal(hit.Point)

	if rt.config.DebugNormals {
		return normalColor(normal)
	}

	// Mirror bounce, lifted off the surface to avoid re-hitting it
	reflection := core.Black
	if sphere.Material.IsReflective() {
		bounceOrigin := hit.Point.Add(normal.Multiply(rt.config.Bias))
		reflection = rt.Trace(direction.Reflect(normal), bounceOrigin, depth-1).
			MultiplyVec(sphere.Material.Reflectivity)
	}

	ambient := rt.scene.Ambient.MultiplyVec(sphere.Material.Ambient)
	color := sphere.Color.Add(ambient).Add(reflection)

	view := direction.Negate().Normalize()
	for _, light := range rt.scene.Lights {
		color = color.Add(rt.LightContribution(hit.Index, hit.Point, normal, view, light))
	}

	return color
}

// LightContribution returns the diffuse plus specular light that reaches
// point on the sphere at index. It is black when another sphere blocks the
// light or the light is behind the surface.
func (rt *Raytracer) LightContribution(index int, point, normal, view core.Vec3, light lights.PointLight) core.Color {
	toLight := light.ToLight(point)
	if geometry.Occluded(core.NewRay(point, toLight), rt.scene.Spheres, index) {
		return core.Black
	}

	lightDir := toLight.Normalize()
	cosTheta := normal.Dot(lightDir)
	if cosTheta <= 0 {
		return core.Black
	}

	mat := rt.scene.Spheres[index].Material
	diffuse := light.Diffuse.MultiplyVec(mat.Diffuse).Multiply(cosTheta)

	highlight := lightDir.Negate().Reflect(normal).Dot(view)
	specular := mat.Specular.MultiplyVec(light.Specular).
		Multiply(math.Pow(max(highlight, 0), float64(mat.Shininess)))

	return diffuse.Add(specular)
}

// normalColor visualizes a surface normal
func normalColor(normal core.Vec3) core.Color {
	rgb := normal.DebugRGB()
	return core.NewColor(float64(rgb[0])/255, float64(rgb[1])/255, float64(rgb[2])/255)
}
