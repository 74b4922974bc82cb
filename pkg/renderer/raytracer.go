package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// PixelSink receives rendered pixels
type PixelSink interface {
	WritePixel(x, y int, color core.Color)
}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	ProgressRows int // Log progress every N rows (0 = only start and end)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		ProgressRows: 50,
	}
}

// Raytracer renders a world through a camera, logging progress as it goes
type Raytracer struct {
	camera *Camera
	world  *scene.World
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(camera *Camera, world *scene.World, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		camera: camera,
		world:  world,
		config: DefaultRenderConfig(),
		logger: logger,
	}
}

// SetRenderConfig updates the rendering configuration
func (rt *Raytracer) SetRenderConfig(config RenderConfig) {
	rt.config = config
}

// SetWorld replaces the world between renders
func (rt *Raytracer) SetWorld(world *scene.World) {
	rt.world = world
}

// Render visits every pixel row by row and writes its color into sink
func (rt *Raytracer) Render(sink PixelSink) RenderStats {
	cam := rt.camera
	start := time.Now()
	rt.logger.Printf("Rendering %dx%d (%d objects, %d lights)\n",
		cam.HSize, cam.VSize, len(rt.world.Objects), len(rt.world.Lights))

	stats := RenderStats{Width: cam.HSize, Height: cam.VSize}
	for y := 0; y < cam.VSize; y++ {
		for x := 0; x < cam.HSize; x++ {
			color := rt.world.ColorAt(cam.RayForPixel(x, y))
			stats.addPixel(color)
			sink.WritePixel(x, y, color)
		}
		if rt.config.ProgressRows > 0 && (y+1)%rt.config.ProgressRows == 0 && y+1 < cam.VSize {
			rt.logger.Printf("  row %d/%d\n", y+1, cam.VSize)
		}
	}
	stats.Duration = time.Since(start)

	rt.logger.Printf("Rendered %d pixels (%d lit) in %v\n", stats.TotalPixels, stats.LitPixels, stats.Duration)
	return stats
}

// RenderCanvas renders into a new canvas sized to the camera
func (rt *Raytracer) RenderCanvas() (*canvas.Canvas, RenderStats) {
	c := canvas.New(rt.camera.HSize, rt.camera.VSize)
	stats := rt.Render(c)
	return c, stats
}

// Render writes world.ColorAt for every pixel of the camera into sink
func Render(camera *Camera, world *scene.World, sink PixelSink) {
	NewRaytracer(camera, world, nil).Render(sink)
}

// RenderCanvas renders world into a new canvas the size of the camera
func RenderCanvas(camera *Camera, world *scene.World) *canvas.Canvas {
	c, _ := NewRaytracer(camera, world, nil).RenderCanvas()
	return c
}
