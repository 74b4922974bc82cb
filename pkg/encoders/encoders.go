// Package encoders writes canvases to image files.
package encoders

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
)

// Format identifies an output image format
type Format string

const (
	PPM Format = "ppm"
	PNG Format = "png"
	BMP Format = "bmp"
)

// ErrUnknownFormat is returned for unsupported format names
var ErrUnknownFormat = errors.New("unknown image format")

// Formats lists the supported formats
var Formats = []Format{PPM, PNG, BMP}

// ParseFormat converts a name such as "png" or ".PNG" to a Format
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(name, ".")))
	switch f {
	case PPM, PNG, BMP:
		return f, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// Extension returns the file extension including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	switch f {
	case PNG:
		return "image/png"
	case BMP:
		return "image/bmp"
	default:
		return "image/x-portable-pixmap"
	}
}

// Encode writes c to w in the given format
func Encode(w io.Writer, c *canvas.Canvas, format Format) error {
	switch format {
	case PPM:
		return EncodePPM(w, c)
	case PNG:
		return EncodePNG(w, c)
	case BMP:
		return EncodeBMP(w, c)
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", string(format))
}

// EncodePNG writes c as a PNG image
func EncodePNG(w io.Writer, c *canvas.Canvas) error {
	return errors.Wrap(png.Encode(w, c.ToRGBAImage()), "failed to encode PNG")
}

// EncodeBMP writes c as a 24-bit BMP image
func EncodeBMP(w io.Writer, c *canvas.Canvas) error {
	return errors.Wrap(bmp.Encode(w, c.ToRGBAImage()), "failed to encode BMP")
}

// EncodeBytes returns c encoded in the given format
func EncodeBytes(c *canvas.Canvas, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, c, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes c to filename, creating parent directories as needed
func Save(filename string, c *canvas.Canvas, format Format) error {
	if _, err := ParseFormat(string(format)); err != nil {
		return err
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create output directory %s", dir)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", filename)
	}

	if err := Encode(file, c, format); err != nil {
		file.Close()
		return errors.Wrapf(err, "failed to save %s", filename)
	}
	return errors.Wrapf(file.Close(), "failed to close %s", filename)
}
