package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/samber/lo"

	"github.com/df07/go-phong-raytracer/pkg/encoders"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Request limits
const (
	minSize = 1
	maxSize = 2000
	minFov  = 1.0   // degrees
	maxFov  = 179.0 // degrees
)

// Server handles web requests for the raytracer
type Server struct {
	port   int
	logger *log.Logger
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port, logger: log.Default()}
}

// SetLogger replaces the server log destination
func (s *Server) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// RenderRequest represents a render or inspect request from the client
type RenderRequest struct {
	Scene       string          `json:"scene"`       // Scene or sketch name
	Width       int             `json:"width"`       // Image width
	Height      int             `json:"height"`      // Image height
	FieldOfView float64         `json:"fieldOfView"` // Degrees
	Frame       int             `json:"frame"`       // Animation frame
	Format      encoders.Format `json:"format"`      // Output image format
	entry       scene.Entry
	sketch      *scene.Sketch
}

// SceneResponse describes a scene for /api/scenes
type SceneResponse struct {
	scene.SceneInfo
	FieldOfViewDegrees float64 `json:"fieldOfViewDegrees"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Scenes   []SceneResponse   `json:"scenes"`
	Sketches []string          `json:"sketches"`
	Formats  []encoders.Format `json:"formats"`
}

// Handler returns the HTTP routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the registered scenes and sketches
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	response := ScenesResponse{
		Scenes: lo.Map(scene.ListScenes(), func(info scene.SceneInfo, _ int) SceneResponse {
			return SceneResponse{SceneInfo: info, FieldOfViewDegrees: info.FieldOfView * 180 / math.Pi}
		}),
		Sketches: scene.SketchNames(),
		Formats:  encoders.Formats,
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// writeJSONError writes {"error": message} with the given status
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// parseRenderRequest parses request parameters. Size and field of view
// default to the scene's own camera.
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	values := r.URL.Query()
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "world" // Default scene
	}

	var err error
	formatName := values.Get("format")
	if formatName == "" {
		formatName = string(encoders.PNG)
	}
	if req.Format, err = encoders.ParseFormat(formatName); err != nil {
		return nil, err
	}

	if sketch, err := scene.LookupSketch(req.Scene); err == nil {
		req.sketch = &sketch
		return req, nil
	}

	if req.entry, err = scene.Lookup(req.Scene); err != nil {
		return nil, err
	}
	camera := req.entry.Camera

	if req.Width, err = parseIntParam(values, "width", camera.Width, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", camera.Height, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.FieldOfView, err = parseFloatParam(values, "fov", camera.FieldOfView*180/math.Pi, minFov, maxFov); err != nil {
		return nil, err
	}
	if req.Frame, err = parseIntParam(values, "frame", 0, 0, req.entry.Frames-1); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 {
		s.logger.Printf("Render warning: %dx%d image may render slowly", req.Width, req.Height)
	}

	return req, nil
}

// cameraConfig returns the scene camera with the request's overrides applied
func (req *RenderRequest) cameraConfig() scene.CameraConfig {
	config := req.entry.Camera
	config.Width = req.Width
	config.Height = req.Height
	config.FieldOfView = req.FieldOfView * math.Pi / 180
	return config
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

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
