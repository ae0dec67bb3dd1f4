package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrInvalidScene is returned when a scene file parses but cannot be rendered
var ErrInvalidScene = errors.New("invalid scene")

// Triple is an [x, y, z] or [r, g, b] array in a scene file
type Triple [3]float64

func (t Triple) Vec3() core.Vec3   { return core.NewVec3(t[0], t[1], t[2]) }
func (t Triple) Color() core.Color { return core.NewColor(t[0], t[1], t[2]) }

// FrameCfg gives the four image plane corners explicitly
type FrameCfg struct {
	TopLeft     Triple `json:"topLeft"`
	TopRight    Triple `json:"topRight"`
	BottomLeft  Triple `json:"bottomLeft"`
	BottomRight Triple `json:"bottomRight"`
}

// ViewCfg derives the frame from a look-at camera. The camera defaults to Eye.
type ViewCfg struct {
	Eye      Triple  `json:"eye"`
	LookAt   Triple  `json:"lookAt"`
	Up       Triple  `json:"up"`
	VFov     float64 `json:"vfov"`
	Distance float64 `json:"distance,omitempty"`
}

type MaterialCfg struct {
	Ambient      Triple `json:"ambient"`
	Diffuse      Triple `json:"diffuse"`
	Specular     Triple `json:"specular"`
	Reflectivity Triple `json:"reflectivity"`
	Shininess    int    `json:"shininess"`
}

type SphereCfg struct {
	Center   Triple      `json:"center"`
	Radius   float64     `json:"radius"`
	Color    Triple      `json:"color"`
	Material MaterialCfg `json:"material"`
}

type LightCfg struct {
	Location Triple `json:"location"`
	Diffuse  Triple `json:"diffuse"`
	Specular Triple `json:"specular"`
}

// SceneFile is the on-disk JSON form of a scene. Exactly one of Frame or
// View places the image plane.
type SceneFile struct {
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Group       string      `json:"group,omitempty"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Camera      *Triple     `json:"camera,omitempty"`
	Frame       *FrameCfg   `json:"frame,omitempty"`
	View        *ViewCfg    `json:"view,omitempty"`
	Ambient     Triple      `json:"ambient"`
	Pattern     string      `json:"pattern,omitempty"` // Suggested supersampling pattern
	MaxDepth    int         `json:"maxDepth,omitempty"`
	Spheres     []SphereCfg `json:"spheres"`
	Lights      []LightCfg  `json:"lights"`
}

// LoadScene reads and builds a scene from a JSON file
func LoadScene(filename string) (*scene.Scene, *SceneFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	s, file, err := ParseScene(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, file, nil
}

// ParseScene decodes and validates scene JSON
func ParseScene(data []byte) (*scene.Scene, *SceneFile, error) {
	var file SceneFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse scene JSON: %w", err)
	}
	s, err := file.Build()
	if err != nil {
		return nil, nil, err
	}
	return s, &file, nil
}

// Build validates the file and constructs the runtime scene
func (f *SceneFile) Build() (*scene.Scene, error) {
	if f.Width < 2 || f.Height < 2 {
		return nil, fmt.Errorf("%w: image must be at least 2x2, got %dx%d", ErrInvalidScene, f.Width, f.Height)
	}

	s := &scene.Scene{
		Width:   f.Width,
		Height:  f.Height,
		Ambient: f.Ambient.Color(),
	}

	switch {
	case f.Frame != nil && f.View != nil:
		return nil, fmt.Errorf("%w: frame and view are mutually exclusive", ErrInvalidScene)
	case f.Frame != nil:
		if f.Camera == nil {
			return nil, fmt.Errorf("%w: an explicit frame needs a camera", ErrInvalidScene)
		}
		s.Frame = scene.NewFrame(
			f.Frame.TopRight.Vec3(), f.Frame.TopLeft.Vec3(),
			f.Frame.BottomRight.Vec3(), f.Frame.BottomLeft.Vec3(),
		)
		s.Camera = f.Camera.Vec3()
	case f.View != nil:
		frame, err := f.View.frame(float64(f.Width) / float64(f.Height))
		if err != nil {
			return nil, err
		}
		s.Frame = frame
		s.Camera = f.View.Eye.Vec3()
		if f.Camera != nil {
			s.Camera = f.Camera.Vec3()
		}
	default:
		return nil, fmt.Errorf("%w: missing frame or view", ErrInvalidScene)
	}

	for i, sc := range f.Spheres {
		if sc.Radius <= 0 {
			return nil, fmt.Errorf("%w: sphere %d has radius %g", ErrInvalidScene, i, sc.Radius)
		}
		if sc.Material.Shininess < 0 {
			return nil, fmt.Errorf("%w: sphere %d has negative shininess", ErrInvalidScene, i)
		}
		mat := material.NewPhong(
			sc.Material.Ambient.Color(),
			sc.Material.Diffuse.Color(),
			sc.Material.Specular.Color(),
			sc.Material.Reflectivity.Color(),
			sc.Material.Shininess,
		)
		s.Spheres = append(s.Spheres, geometry.NewSphere(sc.Center.Vec3(), sc.Radius, sc.Color.Color(), mat))
	}

	for _, lc := range f.Lights {
		s.Lights = append(s.Lights, lights.NewPointLight(lc.Location.Vec3(), lc.Diffuse.Color(), lc.Specular.Color()))
	}

	return s, nil
}

func (v *ViewCfg) frame(aspect float64) (scene.Frame, error) {
	eye, lookAt, up := v.Eye.Vec3(), v.LookAt.Vec3(), v.Up.Vec3()
	forward := lookAt.Subtract(eye)
	if forward.LengthSquared() == 0 {
		return scene.Frame{}, fmt.Errorf("%w: view eye and lookAt coincide", ErrInvalidScene)
	}
	if up.Cross(forward).LengthSquared() == 0 {
		return scene.Frame{}, fmt.Errorf("%w: view up is parallel to the view direction", ErrInvalidScene)
	}
	if v.VFov <= 0 || v.VFov >= 180 {
		return scene.Frame{}, fmt.Errorf("%w: vfov must be in (0, 180), got %g", ErrInvalidScene, v.VFov)
	}

	return scene.NewLookAtFrame(scene.FrameConfig{
		Eye:         eye,
		LookAt:      lookAt,
		Up:          up,
		VFov:        v.VFov,
		AspectRatio: aspect,
		Distance:    v.Distance,
	}), nil
}
