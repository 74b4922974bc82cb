package scene

import (
	"math"
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// ErrUnknownScene is returned when a name is not in the registry
var ErrUnknownScene = errors.New("unknown scene")

// CameraConfig is the default camera placement and resolution for a scene
type CameraConfig struct {
	Width       int        // Horizontal size in pixels
	Height      int        // Vertical size in pixels
	FieldOfView float64    // Radians
	From        core.Tuple // Eye position
	To          core.Tuple // Point the camera looks at
	Up          core.Tuple // Approximate up vector
}

// Entry describes a registered scene
type Entry struct {
	Name        string
	Description string
	Camera      CameraConfig
	Frames      int                            // Number of frames; 1 for a still image
	FramePrefix string                         // File name prefix for animation frames
	Build       func(frame, frames int) *World // Builds frame of an animation frames long
}

// SceneInfo is the listing form of an entry
type SceneInfo struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	FieldOfView float64 `json:"fieldOfView"`
	Frames      int     `json:"frames"`
}

var registry = map[string]Entry{
	"default": {
		Name:        "default",
		Description: "Two nested spheres lit from the upper left",
		Camera: CameraConfig{
			Width: 11, Height: 11, FieldOfView: math.Pi / 2,
			From: core.Point(0, 0, -5), To: core.Point(0, 0, 0), Up: core.Vector(0, 1, 0),
		},
		Frames: 1,
		Build:  func(int, int) *World { return DefaultWorld() },
	},
	"world": {
		Name:        "world",
		Description: "Three spheres in a room built from flattened spheres",
		Camera: CameraConfig{
			Width: 600, Height: 300, FieldOfView: math.Pi / 3,
			From: core.Point(0, 1.5, -5), To: core.Point(0, 1, 0), Up: core.Vector(0, 1, 0),
		},
		Frames: 1,
		Build:  func(int, int) *World { return NewRoomWorld(-10) },
	},
	"planets": {
		Name:        "planets",
		Description: "A small planet orbiting a large blue sphere",
		Camera: CameraConfig{
			Width: 300, Height: 150, FieldOfView: math.Pi / 3,
			From: core.Point(0, 1.5, -8), To: core.Point(0, 0, 0), Up: core.Vector(0, 1, 0),
		},
		Frames:      PlanetFrames,
		FramePrefix: "planet",
		Build: func(frame, frames int) *World {
			return NewPlanetsWorld(PlanetAngle(frame, frames))
		},
	},
}

// Lookup returns the registered scene called name
func Lookup(name string) (Entry, error) {
	entry, ok := registry[name]
	if !ok {
		return Entry{}, errors.Wrapf(ErrUnknownScene, "%q", name)
	}
	return entry, nil
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := lo.Keys(registry)
	slices.Sort(names)
	return names
}

// Info returns the listing form of the entry
func (e Entry) Info() SceneInfo {
	return SceneInfo{
		Name:        e.Name,
		Description: e.Description,
		Width:       e.Camera.Width,
		Height:      e.Camera.Height,
		FieldOfView: e.Camera.FieldOfView,
		Frames:      e.Frames,
	}
}

// ListScenes returns every registered scene sorted by name
func ListScenes() []SceneInfo {
	return lo.Map(Names(), func(name string, _ int) SceneInfo {
		return registry[name].Info()
	})
}
