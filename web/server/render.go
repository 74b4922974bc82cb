package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/encoders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// handleRender renders a scene synchronously and returns the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	w.Header().Set("Access-Control-Allow-Origin", "*")

	// Parse and validate request
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	renderID := newRenderID()
	logger := NewWebLogger(renderID, s.logger)
	startTime := time.Now()

	img, err := renderImage(req, logger)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	data, err := encoders.EncodeBytes(img, req.Format)
	if err != nil {
		logger.Printf("Encoding failed: %v\n", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to encode image")
		return
	}

	elapsed := time.Since(startTime)
	logger.Printf("Served %s as %s (%d bytes) in %v\n", req.Scene, req.Format, len(data), elapsed)

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Render-ID", renderID)
	w.Header().Set("X-Render-Millis", strconv.FormatInt(elapsed.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// renderImage draws the requested sketch or renders the requested scene frame
func renderImage(req *RenderRequest, logger core.Logger) (*canvas.Canvas, error) {
	if req.sketch != nil {
		logger.Printf("Drawing sketch %s\n", req.sketch.Name)
		return req.sketch.Draw(), nil
	}

	camera, err := renderer.NewCameraFromConfig(req.cameraConfig())
	if err != nil {
		return nil, err
	}

	raytracer := renderer.NewRaytracer(camera, req.entry.Build(req.Frame, req.entry.Frames), logger)
	raytracer.SetRenderConfig(renderer.RenderConfig{ProgressRows: max(1, req.Height/4)})
	img, _ := raytracer.RenderCanvas()
	return img, nil
}
