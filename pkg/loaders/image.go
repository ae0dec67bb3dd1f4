package loaders

import (
	"fmt"
	_ "image/jpeg" // JPEG decoder
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SavePNG writes a rendered grid as an 8-bit PNG, creating the parent
// directory if needed
func SavePNG(filename string, grid *core.Grid) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := gg.SavePNG(filename, grid.Image()); err != nil {
		return fmt.Errorf("failed to save PNG: %w", err)
	}
	return nil
}

// LoadImage loads a PNG or JPEG image into a color grid with channels in [0,1]
func LoadImage(filename string) (*core.Grid, error) {
	img, err := gg.LoadImage(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	grid := core.NewGrid(bounds.Dx(), bounds.Dy())
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			grid.Set(x, y, core.NewColor(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			))
		}
	}
	return grid, nil
}
