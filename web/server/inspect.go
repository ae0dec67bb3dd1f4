package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for sphere inspection
type InspectResponse struct {
	Hit         bool                   `json:"hit"`
	SphereIndex int                    `json:"sphereIndex"`
	Point       [3]float64             `json:"point"`
	Normal      [3]float64             `json:"normal"`
	Distance    float64                `json:"distance"`
	Color       string                 `json:"color"` // Shaded color of the pixel center
	Properties  map[string]interface{} `json:"properties"`
}

// InspectResult describes the sphere seen through a pixel center
type InspectResult struct {
	Hit    bool
	Record geometry.HitRecord
	Sphere geometry.Sphere
	Normal core.Vec3
	Color  core.Color
}

// inspectPixel casts a ray through the center of a pixel and returns the
// first sphere hit along with the color the tracer gives it
func inspectPixel(sceneObj *scene.Scene, config renderer.RenderConfig, pixelX, pixelY int) InspectResult {
	ray := renderer.PrimaryRay(sceneObj, pixelX, pixelY, renderer.Offset{})

	record, isHit := geometry.Nearest(ray, sceneObj.Spheres)
	if !isHit {
		return InspectResult{Hit: false}
	}

	sphere := sceneObj.Spheres[record.Index]
	color := renderer.NewRaytracer(sceneObj, config).Trace(ray.Direction, ray.Origin, config.MaxDepth)
	return InspectResult{
		Hit:    true,
		Record: record,
		Sphere: sphere,
		Normal: sphere.SurfaceNormal(record.Point),
		Color:  color.Clamp(0, 1),
	}
}

// materialProperties lists the Phong coefficients of a material
func materialProperties(sphere geometry.Sphere) map[string]interface{} {
	triple := func(c core.Color) [3]float64 { return [3]float64{c.R, c.G, c.B} }
	mat := sphere.Material
	return map[string]interface{}{
		"center":       [3]float64{sphere.Center.X, sphere.Center.Y, sphere.Center.Z},
		"radius":       sphere.Radius,
		"baseColor":    colorHex(sphere.Color),
		"ambient":      triple(mat.Ambient),
		"diffuse":      triple(mat.Diffuse),
		"specular":     triple(mat.Specular),
		"reflectivity": triple(mat.Reflectivity),
		"shininess":    mat.Shininess,
		"reflective":   mat.IsReflective(),
	}
}

// handleInspect reports which sphere is visible through a pixel
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sceneName := query.Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, suggested, err := s.createScene(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	width, err := parseIntParam(query, "width", sceneObj.Width, minSize, maxSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	height, err := parseIntParam(query, "height", sceneObj.Height, minSize, maxSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sceneObj.Width, sceneObj.Height = width, height

	x, err := parseIntParam(query, "x", -1, 0, width-1)
	if err == nil && x < 0 {
		err = fmt.Errorf("missing x")
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", -1, 0, height-1)
	if err == nil && y < 0 {
		err = fmt.Errorf("missing y")
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	config := renderer.MergeRenderConfig(renderer.DefaultRenderConfig(), suggested)
	result := inspectPixel(sceneObj, config, x, y)

	response := InspectResponse{Hit: result.Hit, SphereIndex: -1}
	if result.Hit {
		p, n := result.Record.Point, result.Normal
		response.SphereIndex = result.Record.Index
		response.Point = [3]float64{p.X, p.Y, p.Z}
		response.Normal = [3]float64{n.X, n.Y, n.Z}
		response.Distance = p.Subtract(sceneObj.Camera).Length()
		response.Color = colorHex(result.Color)
		response.Properties = materialProperties(result.Sphere)
	}
	writeJSON(w, http.StatusOK, response)
}
