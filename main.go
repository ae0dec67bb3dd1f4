package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const scenesDir = "scenes"

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "default", "Built-in scene name or path to a .json scene file")
	pattern := flag.String("pattern", "", "Supersampling pattern: single, four, six, nine (or 1, 4, 6, 9)")
	width := flag.Int("width", 0, "Override image width in pixels")
	height := flag.Int("height", 0, "Override image height in pixels")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto)")
	tileSize := flag.Int("tile", 0, "Tile size in pixels (0 = default)")
	depth := flag.Int("depth", 0, "Maximum trace depth (0 = default)")
	normals := flag.Bool("normals", false, "Shade by surface normal instead of lighting")
	output := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.BuiltInScenes() {
			fmt.Printf("  %-14s - %s\n", info.ID, info.Description)
		}
		fmt.Printf("  <file>.json    - Scene file, see %s/\n", scenesDir)
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return
	}

	if *list {
		if err := listScenes(); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Starting Whitted Raytracer...")

	selected, fileConfig, err := createScene(*sceneName)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	if *width > 0 {
		selected.Width = *width
	}
	if *height > 0 {
		selected.Height = *height
	}
	if selected.Width < 2 || selected.Height < 2 {
		fmt.Printf("Image must be at least 2x2, got %dx%d\n", selected.Width, selected.Height)
		os.Exit(1)
	}

	// Flags override the scene file, which overrides the defaults
	config := renderer.MergeRenderConfig(renderer.DefaultRenderConfig(), fileConfig)
	override := renderer.RenderConfig{
		NumWorkers:   *workers,
		TileSize:     *tileSize,
		MaxDepth:     *depth,
		DebugNormals: *normals,
	}
	if *pattern != "" {
		p, err := renderer.ParseSamplePattern(*pattern)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		override.Pattern = p
	}
	config = renderer.MergeRenderConfig(config, override)

	grid, stats, err := renderer.NewRenderer(selected, config, renderer.NewDefaultLogger()).Render()
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %d pixels with %d tiles on %d workers\n", stats.TotalPixels, stats.Tiles, stats.Workers)
	fmt.Printf("Average luminance: %.4f\n", renderer.AverageLuminance(grid))

	filename := *output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", outputName(*sceneName), fmt.Sprintf("render_%s.png", timestamp))
	}

	if err := loaders.SavePNG(filename, grid); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene resolves a built-in scene name or a JSON scene path. Scene
// files may also suggest render settings.
func createScene(name string) (*scene.Scene, renderer.RenderConfig, error) {
	if name == "" {
		return nil, renderer.RenderConfig{}, fmt.Errorf("scene name is empty")
	}

	if !strings.HasSuffix(name, ".json") {
		s, err := scene.Create(name)
		return s, renderer.RenderConfig{}, err
	}

	s, file, err := loaders.LoadScene(name)
	if err != nil {
		return nil, renderer.RenderConfig{}, err
	}

	config := renderer.RenderConfig{MaxDepth: file.MaxDepth}
	if file.Pattern != "" {
		p, err := renderer.ParseSamplePattern(file.Pattern)
		if err != nil {
			return nil, renderer.RenderConfig{}, fmt.Errorf("%s: %w", name, err)
		}
		config.Pattern = p
	}
	return s, config, nil
}

// outputName turns a scene name or path into an output directory name
func outputName(name string) string {
	return strings.TrimSuffix(filepath.Base(name), ".json")
}

func listScenes() error {
	response, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		return err
	}

	for _, group := range response.Groups {
		fmt.Printf("%s:\n", group.Name)
		for _, info := range group.Scenes {
			id := info.ID
			if info.FilePath != "" {
				id = info.FilePath
			}
			fmt.Printf("  %-28s %s\n", id, info.DisplayName)
		}
	}
	return nil
}
