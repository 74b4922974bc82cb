package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Object       int                    `json:"object"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	Color        [3]float64             `json:"color"`
	Properties   map[string]interface{} `json:"properties"`
}

// extractMaterialInfo lists the Phong coefficients of a material
func extractMaterialInfo(m material.Material) map[string]interface{} {
	return map[string]interface{}{
		"color":     [3]float64{m.Color.R, m.Color.G, m.Color.B},
		"ambient":   m.Ambient,
		"diffuse":   m.Diffuse,
		"specular":  m.Specular,
		"shininess": m.Shininess,
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		center := geom.Transform().MustMultiplyTuple(core.Point(0, 0, 0))
		properties["center"] = [3]float64{center.X, center.Y, center.Z}
		properties["transform"] = geom.Transform().String()
		return "sphere", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts the ray through the center of a pixel and describes the first visible hit
func inspectPixel(world *scene.World, camera *renderer.Camera, pixelX, pixelY int) InspectResponse {
	ray := camera.RayForPixel(pixelX, pixelY)
	hit, ok := geometry.Hit(world.Intersect(ray))
	if !ok {
		return InspectResponse{Hit: false, Object: -1}
	}

	shape := world.Objects[hit.Object]
	comps := geometry.PrepareComputations(ray, hit, shape)
	color := world.ShadeHit(comps)
	geometryType, geometryProps := extractGeometryInfo(shape)

	return InspectResponse{
		Hit:          true,
		Object:       hit.Object,
		GeometryType: geometryType,
		Point:        [3]float64{comps.Point.X, comps.Point.Y, comps.Point.Z},
		Normal:       [3]float64{comps.NormalV.X, comps.NormalV.Y, comps.NormalV.Z},
		Distance:     hit.T,
		Inside:       comps.Inside,
		Color:        [3]float64{color.R, color.G, color.B},
		Properties: map[string]interface{}{
			"material": extractMaterialInfo(shape.Material()),
			"geometry": geometryProps,
		},
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	// Parse common scene parameters using shared function
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}
	if req.sketch != nil {
		writeJSONError(w, http.StatusBadRequest, "Sketches cannot be inspected: "+req.Scene)
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	// Validate pixel coordinates
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeJSONError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	camera, err := renderer.NewCameraFromConfig(req.cameraConfig())
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid camera: "+err.Error())
		return
	}

	response := inspectPixel(req.entry.Build(req.Frame, req.entry.Frames), camera, pixelX, pixelY)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
