package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"spheregrid scene", "spheregrid", false},
		{"single-sphere scene", "single-sphere", false},

		// Scene files (by path)
		{"direct JSON path", "scenes/mirror-pair.json", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid JSON path", "scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, _, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene == nil {
				t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
			}
			if scene.Width < 2 || scene.Height < 2 {
				t.Errorf("Scene size should be at least 2x2, got %dx%d", scene.Width, scene.Height)
			}
			if len(scene.Spheres) == 0 {
				t.Errorf("Scene '%s' should contain spheres", tt.sceneType)
			}
		})
	}
}

func TestCreateScene_FileConfig(t *testing.T) {
	_, config, err := createScene("scenes/mirror-pair.json")
	if err != nil {
		t.Fatalf("createScene() error: %v", err)
	}
	if config.Pattern != renderer.SampleNine || config.MaxDepth != 6 {
		t.Errorf("Expected pattern nine and depth 6 from the scene file, got %+v", config)
	}

	// Built-ins suggest nothing
	_, config, err = createScene("default")
	if err != nil {
		t.Fatalf("createScene() error: %v", err)
	}
	if config != (renderer.RenderConfig{}) {
		t.Errorf("Expected empty config for built-in scene, got %+v", config)
	}
}

func TestCreateScene_BadPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad-pattern.json")
	data := `{"width": 4, "height": 4, "camera": [0, 0, -1], "pattern": "seven",
		"frame": {"topLeft": [-1, 1, 0], "topRight": [1, 1, 0], "bottomLeft": [-1, -1, 0], "bottomRight": [1, -1, 0]}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}

	if _, _, err := createScene(path); err == nil {
		t.Error("Expected error for unknown pattern in scene file")
	}
}

func TestOutputName(t *testing.T) {
	tests := map[string]string{
		"default":                 "default",
		"scenes/mirror-pair.json": "mirror-pair",
		"/tmp/custom.json":        "custom",
	}
	for input, expected := range tests {
		if got := outputName(input); got != expected {
			t.Errorf("outputName(%q) = %q, want %q", input, got, expected)
		}
	}
}
