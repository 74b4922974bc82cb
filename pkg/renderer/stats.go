package renderer

import (
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int           // Camera width in pixels
	Height      int           // Camera height in pixels
	TotalPixels int           // Number of pixels rendered
	LitPixels   int           // Pixels whose color is not black
	Luminance   float64       // Sum of pixel luminance
	Duration    time.Duration // Wall time of the render
}

func (s *RenderStats) addPixel(color core.Color) {
	s.TotalPixels++
	if color != core.Black {
		s.LitPixels++
	}
	s.Luminance += Luminance(color)
}

// AverageLuminance returns the mean luminance over all rendered pixels
func (s RenderStats) AverageLuminance() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return s.Luminance / float64(s.TotalPixels)
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Duration.Seconds()
}

// Luminance returns the Rec. 709 luminance of a color
func Luminance(c core.Color) float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}
