package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/encoders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	scene  string
	width  int     // 0 = scene default
	height int     // 0 = scene default
	fov    float64 // degrees, 0 = scene default
	frames int     // 0 = scene default
	format string
	outDir string
}

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "world", "Scene or sketch to render (see -help)")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	fov := flag.Float64("fov", 0, "Field of view in degrees (0 = scene default)")
	frames := flag.Int("frames", 0, "Number of animation frames (0 = scene default)")
	format := flag.String("format", "ppm", "Output format: ppm, png or bmp")
	outDir := flag.String("out", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		printHelp()
		return
	}

	fmt.Println("Starting Phong Raytracer...")

	files, err := run(options{
		scene:  *sceneName,
		width:  *width,
		height: *height,
		fov:    *fov,
		frames: *frames,
		format: *format,
		outDir: *outDir,
	}, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done: %d file(s) written\n", len(files))
}

func printHelp() {
	fmt.Println("Phong Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-10s - %s (%dx%d, %d frame(s))\n", info.Name, info.Description, info.Width, info.Height, info.Frames)
	}
	fmt.Println()
	fmt.Println("Available sketches:")
	for _, name := range scene.SketchNames() {
		sketch, _ := scene.LookupSketch(name)
		fmt.Printf("  %-10s - %s\n", name, sketch.Description)
	}
	fmt.Println()
	fmt.Println("Output is saved to <out>/<scene>.<format>; animations to <out>/<prefix>-NN.<format>")
}

// createScene looks up a registered scene, listing the alternatives on failure
func createScene(name string) (scene.Entry, error) {
	entry, err := scene.Lookup(name)
	if err != nil {
		available := append(scene.Names(), scene.SketchNames()...)
		return scene.Entry{}, errors.Wrapf(err, "available: %s", strings.Join(available, ", "))
	}
	return entry, nil
}

// cameraConfig applies command line overrides to a scene's default camera
func cameraConfig(defaults scene.CameraConfig, opts options) scene.CameraConfig {
	config := defaults
	if opts.width > 0 {
		config.Width = opts.width
	}
	if opts.height > 0 {
		config.Height = opts.height
	}
	if opts.fov > 0 {
		config.FieldOfView = opts.fov * math.Pi / 180
	}
	return config
}

// frameFilename names the output for one frame. Still images use the scene
// name; animation frames are numbered with at least two digits.
func frameFilename(entry scene.Entry, frame, frames int, format encoders.Format) string {
	if frames <= 1 {
		return entry.Name + format.Extension()
	}
	prefix := entry.FramePrefix
	if prefix == "" {
		prefix = entry.Name
	}
	return fmt.Sprintf("%s-%02d%s", prefix, frame, format.Extension())
}

// run renders the selected scene or sketch and returns the files written
func run(opts options, logger core.Logger) ([]string, error) {
	format, err := encoders.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}
	if opts.width < 0 || opts.height < 0 || opts.frames < 0 || opts.fov < 0 || opts.fov >= 180 {
		return nil, errors.New("width, height, frames and fov must be non-negative and fov below 180")
	}

	// Sketches paint a canvas directly
	if sketch, err := scene.LookupSketch(opts.scene); err == nil {
		logger.Printf("Drawing sketch %s...\n", sketch.Name)
		filename := filepath.Join(opts.outDir, sketch.Name+format.Extension())
		if err := encoders.Save(filename, sketch.Draw(), format); err != nil {
			return nil, err
		}
		logger.Printf("Image saved as %s\n", filename)
		return []string{filename}, nil
	}

	entry, err := createScene(opts.scene)
	if err != nil {
		return nil, err
	}

	camera, err := renderer.NewCameraFromConfig(cameraConfig(entry.Camera, opts))
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", entry.Name)
	}

	frames := entry.Frames
	if opts.frames > 0 {
		frames = opts.frames
	}

	logger.Printf("Using %s scene (%dx%d, %d frame(s))...\n", entry.Name, camera.HSize, camera.VSize, frames)

	// The camera stays fixed while the world is rebuilt for every frame
	raytracer := renderer.NewRaytracer(camera, entry.Build(0, frames), logger)
	files := make([]string, 0, frames)
	for frame := 0; frame < frames; frame++ {
		if frame > 0 {
			raytracer.SetWorld(entry.Build(frame, frames))
		}
		img, stats := raytracer.RenderCanvas()

		filename := filepath.Join(opts.outDir, frameFilename(entry, frame, frames, format))
		if err := encoders.Save(filename, img, format); err != nil {
			return files, err
		}
		logger.Printf("Frame %d/%d saved as %s (%.0f pixels/s)\n", frame+1, frames, filename, stats.PixelsPerSecond())
		files = append(files, filename)
	}

	return files, nil
}
