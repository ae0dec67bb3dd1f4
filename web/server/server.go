package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Size limits for web renders
const (
	minSize  = 2
	maxSize  = 2000
	maxDepth = 32
)

// Server handles web requests for the raytracer
type Server struct {
	port      int
	scenesDir string
}

// NewServer creates a new web server that also serves scene files from scenesDir
func NewServer(port int, scenesDir string) *Server {
	return &Server{port: port, scenesDir: scenesDir}
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// handleSceneConfig returns the default render settings for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, suggested, err := s.createScene(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	config := renderer.MergeRenderConfig(renderer.DefaultRenderConfig(), suggested)
	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":    sceneObj.Width,
			"height":   sceneObj.Height,
			"pattern":  config.Pattern.String(),
			"maxDepth": config.MaxDepth,
			"spheres":  sceneObj.GetPrimitiveCount(),
			"lights":   len(sceneObj.Lights),
		},
		"limits": map[string]interface{}{
			"width":    map[string]int{"min": minSize, "max": maxSize},
			"height":   map[string]int{"min": minSize, "max": maxSize},
			"maxDepth": map[string]int{"min": 1, "max": maxDepth},
			"pattern":  []string{"single", "four", "six", "nine"},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

// createScene resolves a built-in scene id or a "json:<name>" scene file
// id from the scene listing
func (s *Server) createScene(name string) (*scene.Scene, renderer.RenderConfig, error) {
	fileName, isFile := strings.CutPrefix(name, "json:")
	if !isFile {
		sceneObj, err := scene.Create(name)
		return sceneObj, renderer.RenderConfig{}, err
	}

	// Scene file ids never carry a path
	if fileName == "" || filepath.Base(fileName) != fileName {
		return nil, renderer.RenderConfig{}, fmt.Errorf("invalid scene file id: %q", name)
	}

	sceneObj, file, err := loaders.LoadScene(filepath.Join(s.scenesDir, fileName+".json"))
	if err != nil {
		return nil, renderer.RenderConfig{}, err
	}
	config := renderer.RenderConfig{MaxDepth: file.MaxDepth}
	if file.Pattern != "" {
		if config.Pattern, err = renderer.ParseSamplePattern(file.Pattern); err != nil {
			return nil, renderer.RenderConfig{}, err
		}
	}
	return sceneObj, config, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseBoolParam parses a boolean parameter from URL query
func parseBoolParam(values url.Values, key string) (bool, error) {
	value := values.Get(key)
	if value == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %s", key, value)
	}
	return parsed, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
