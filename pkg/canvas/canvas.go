// Package canvas stores rendered colors and adapts them to the image package.
package canvas

import (
	"image"
	"image/color"
	"iter"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Canvas is a width×height grid of colors, initialized to black
type Canvas struct {
	width, height int
	pixels        []core.Color // row-major
}

// New creates a black canvas
func New(width, height int) *Canvas {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the number of columns
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// WritePixel stores color at (x, y). Writes outside the canvas are ignored.
func (c *Canvas) WritePixel(x, y int, color core.Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[y*c.width+x] = color
}

// PixelAt returns the color at (x, y); ok is false outside the canvas
func (c *Canvas) PixelAt(x, y int) (color core.Color, ok bool) {
	if !c.inBounds(x, y) {
		return core.Color{}, false
	}
	return c.pixels[y*c.width+x], true
}

// All yields every pixel in row-major order. Each call starts a fresh walk
// over [0,width)×[0,height).
func (c *Canvas) All() iter.Seq2[image.Point, core.Color] {
	return func(yield func(image.Point, core.Color) bool) {
		for y := 0; y < c.height; y++ {
			for x := 0; x < c.width; x++ {
				if !yield(image.Pt(x, y), c.pixels[y*c.width+x]) {
					return
				}
			}
		}
	}
}

// Fill sets every pixel to color
func (c *Canvas) Fill(color core.Color) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
}

// ToByte maps a color channel to [0,255]: round(clamp(v,0,1)·255)
func ToByte(v float64) uint8 {
	return uint8(math.Round(max(0, min(1, v)) * 255))
}

// ToRGBA converts a color to 8-bit RGBA with full opacity
func ToRGBA(c core.Color) color.RGBA {
	return color.RGBA{R: ToByte(c.R), G: ToByte(c.G), B: ToByte(c.B), A: 255}
}

// ColorModel implements image.Image
func (c *Canvas) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image
func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

// At implements image.Image
func (c *Canvas) At(x, y int) color.Color {
	px, ok := c.PixelAt(x, y)
	if !ok {
		return color.RGBA{}
	}
	return ToRGBA(px)
}

// ToRGBAImage copies the canvas into an *image.RGBA
func (c *Canvas) ToRGBAImage() *image.RGBA {
	img := image.NewRGBA(c.Bounds())
	for p, px := range c.All() {
		img.SetRGBA(p.X, p.Y, ToRGBA(px))
	}
	return img
}
