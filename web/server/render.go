package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var renderCounter atomic.Int64

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string                 // Scene id (e.g., "default" or "json:mirror-pair")
	Width    int                    // Image width (0 = scene default)
	Height   int                    // Image height (0 = scene default)
	Pattern  renderer.SamplePattern // Supersampling pattern
	MaxDepth int                    // Maximum trace depth
	Normals  bool                   // Debug normal shading
	Format   string                 // "png" or "json"
}

// RenderResponse is the JSON form of a finished render
type RenderResponse struct {
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Stats     Stats            `json:"stats"`
	Luminance float64          `json:"luminance"`
	ElapsedMs int64            `json:"elapsedMs"`
	Console   []ConsoleMessage `json:"console"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int     `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	Tiles          int     `json:"tiles"`
	Workers        int     `json:"workers"`
}

// handleRender renders a scene and returns it as a PNG, or as JSON with
// stats and the render log when format=json
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, suggested, err := s.createScene(req.Scene)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	applySize(sceneObj, req)

	config := renderer.MergeRenderConfig(renderer.DefaultRenderConfig(), suggested)
	config = renderer.MergeRenderConfig(config, renderer.RenderConfig{
		Pattern:      req.Pattern,
		MaxDepth:     req.MaxDepth,
		DebugNormals: req.Normals,
	})

	consoleChan := make(chan ConsoleMessage, 16)
	renderID := fmt.Sprintf("render-%d", renderCounter.Add(1))
	logger := NewWebLogger(renderID, consoleChan)

	startTime := time.Now()
	grid, stats, err := renderer.NewRenderer(sceneObj, config, logger).Render()
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, grid.Image()); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	if req.Format == "png" {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Width:     grid.Width,
		Height:    grid.Height,
		Stats:     newStats(stats),
		Luminance: renderer.AverageLuminance(grid),
		ElapsedMs: time.Since(startTime).Milliseconds(),
		Console:   drainConsole(consoleChan),
	})
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene"), Format: query.Get("format")}

	if req.Scene == "" {
		req.Scene = "default"
	}
	switch req.Format {
	case "":
		req.Format = "png"
	case "png", "json":
	default:
		return nil, fmt.Errorf("format must be png or json, got: %s", req.Format)
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", 0, 1, maxDepth); err != nil {
		return nil, err
	}
	if req.Normals, err = parseBoolParam(query, "normals"); err != nil {
		return nil, err
	}
	if pattern := query.Get("pattern"); pattern != "" {
		if req.Pattern, err = renderer.ParseSamplePattern(pattern); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// applySize overrides the scene dimensions with the requested ones
func applySize(sceneObj *scene.Scene, req *RenderRequest) {
	if req.Width > 0 {
		sceneObj.Width = req.Width
	}
	if req.Height > 0 {
		sceneObj.Height = req.Height
	}
}

func newStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:    stats.TotalPixels,
		TotalSamples:   stats.TotalSamples,
		AverageSamples: stats.AverageSamples,
		Tiles:          stats.Tiles,
		Workers:        stats.Workers,
	}
}

// colorHex formats a color as a #rrggbb string
func colorHex(c core.Color) string {
	r, g, b := c.RGB8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
