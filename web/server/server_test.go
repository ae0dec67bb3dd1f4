package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const testSceneFile = `{
	"name": "Test Ball",
	"width": 9, "height": 9,
	"camera": [0, 0, 0],
	"frame": {"topLeft": [-1, 1, 1], "topRight": [1, 1, 1], "bottomLeft": [-1, -1, 1], "bottomRight": [1, -1, 1]},
	"ambient": [0.1, 0.1, 0.1],
	"pattern": "single",
	"spheres": [{"center": [0, 0, 2], "radius": 1, "color": [0.5, 0, 0], "material": {"ambient": [1, 1, 1]}}]
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ball.json"), []byte(testSceneFile), 0644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}
	ts := httptest.NewServer(NewServer(0, dir).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, status int, v interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != status {
		t.Fatalf("GET %s: expected status %d, got %d", url, status, resp.StatusCode)
	}
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
	}
}

func TestHandleHealth(t *testing.T) {
	ts := newTestServer(t)

	var body map[string]string
	getJSON(t, ts.URL+"/api/health", http.StatusOK, &body)
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestHandleScenes(t *testing.T) {
	ts := newTestServer(t)

	var response scene.ScenesResponse
	getJSON(t, ts.URL+"/api/scenes", http.StatusOK, &response)

	found := false
	for _, group := range response.Groups {
		for _, info := range group.Scenes {
			if info.ID == "json:ball" {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("Expected scene file json:ball in listing, got %+v", response)
	}
}

func TestHandleSceneConfig(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Defaults map[string]interface{} `json:"defaults"`
	}
	getJSON(t, ts.URL+"/api/scene-config?scene=json:ball", http.StatusOK, &body)
	if body.Defaults["pattern"] != "single" {
		t.Errorf("Expected pattern suggested by the file, got %v", body.Defaults["pattern"])
	}

	getJSON(t, ts.URL+"/api/scene-config?scene=nonexistent", http.StatusBadRequest, nil)
	getJSON(t, ts.URL+"/api/scene-config?scene=json:../ball", http.StatusBadRequest, nil)
}

func TestHandleRender_PNG(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/render?scene=single-sphere&width=16&height=12&pattern=1")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}

	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 12 {
		t.Errorf("Expected 16x12 image, got %v", img.Bounds())
	}
}

func TestHandleRender_JSON(t *testing.T) {
	ts := newTestServer(t)

	var response RenderResponse
	getJSON(t, ts.URL+"/api/render?scene=json:ball&format=json", http.StatusOK, &response)

	if response.Width != 9 || response.Height != 9 {
		t.Errorf("Expected 9x9 render, got %dx%d", response.Width, response.Height)
	}
	if response.Stats.TotalPixels != 81 || response.Stats.AverageSamples != 1 {
		t.Errorf("Unexpected stats %+v", response.Stats)
	}
	if response.Luminance <= 0 {
		t.Errorf("Expected a visible sphere, got luminance %f", response.Luminance)
	}
	if len(response.Console) == 0 {
		t.Error("Expected render log lines in console")
	}

	data, err := base64.StdEncoding.DecodeString(response.ImageData)
	if err != nil {
		t.Fatalf("Invalid base64 image: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("Invalid PNG payload: %v", err)
	}
}

func TestHandleRender_BadRequests(t *testing.T) {
	ts := newTestServer(t)

	tests := []string{
		"/api/render?scene=nonexistent",
		"/api/render?pattern=seven",
		"/api/render?width=1",
		"/api/render?width=abc",
		"/api/render?maxDepth=0",
		"/api/render?normals=maybe",
		"/api/render?format=gif",
	}
	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			getJSON(t, ts.URL+path, http.StatusBadRequest, nil)
		})
	}
}

func TestHandleInspect(t *testing.T) {
	ts := newTestServer(t)

	var hit InspectResponse
	getJSON(t, ts.URL+"/api/inspect?scene=json:ball&x=4&y=4", http.StatusOK, &hit)
	if !hit.Hit || hit.SphereIndex != 0 {
		t.Fatalf("Expected center pixel to hit sphere 0, got %+v", hit)
	}
	if hit.Distance < 0.999 || hit.Distance > 1.001 {
		t.Errorf("Expected distance 1, got %f", hit.Distance)
	}
	if hit.Normal != [3]float64{0, 0, -1} {
		t.Errorf("Expected normal facing the camera, got %v", hit.Normal)
	}
	// Base color plus ambient: (0.6, 0.1, 0.1)
	if hit.Color != "#991a1a" {
		t.Errorf("Expected #991a1a, got %s", hit.Color)
	}

	var miss InspectResponse
	getJSON(t, ts.URL+"/api/inspect?scene=json:ball&x=0&y=0", http.StatusOK, &miss)
	if miss.Hit || miss.SphereIndex != -1 {
		t.Errorf("Expected corner to miss, got %+v", miss)
	}

	getJSON(t, ts.URL+"/api/inspect?scene=json:ball&x=9&y=0", http.StatusBadRequest, nil)
	getJSON(t, ts.URL+"/api/inspect?scene=json:ball&y=0", http.StatusBadRequest, nil)
}
