package encoders

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
)

func ppmLines(t *testing.T, c *canvas.Canvas) []string {
	t.Helper()
	var buf bytes.Buffer
	if err := EncodePPM(&buf, c); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Error("PPM output should end with a newline")
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestEncodePPM_Header(t *testing.T) {
	lines := ppmLines(t, canvas.New(5, 3))
	expected := []string{"P3", "5 3", "255"}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("Header line %d: expected %q, got %q", i, want, lines[i])
		}
	}
}

func TestEncodePPM_PixelData(t *testing.T) {
	c := canvas.New(5, 3)
	c.WritePixel(0, 0, core.NewColor(1.5, 0, 0))
	c.WritePixel(2, 1, core.NewColor(0, 0.5, 0))
	c.WritePixel(4, 2, core.NewColor(-0.5, 0, 1.5))

	lines := ppmLines(t, c)
	expected := []string{
		"255 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 128 0 0 0 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 0 0 0 0 255",
	}
	if len(lines) != 3+len(expected) {
		t.Fatalf("Expected %d lines, got %d: %q", 3+len(expected), len(lines), lines)
	}
	for i, want := range expected {
		if lines[3+i] != want {
			t.Errorf("Data line %d:\nexpected %q\ngot      %q", i, want, lines[3+i])
		}
	}
}

func TestEncodePPM_LongLinesWrap(t *testing.T) {
	c := canvas.New(10, 2)
	c.Fill(core.NewColor(1, 0.8, 0.6))

	lines := ppmLines(t, c)
	values := 0
	for i, line := range lines[3:] {
		if len(line) > MaxPPMLineLength {
			t.Errorf("Line %d is %d characters long", i, len(line))
		}
		fields := strings.Fields(line)
		if len(fields)%3 != 0 {
			t.Errorf("Line %d splits a pixel: %q", i, line)
		}
		for _, f := range fields {
			if f != "255" && f != "204" && f != "153" {
				t.Errorf("Unexpected value %q", f)
			}
		}
		values += len(fields)
	}
	if values != 10*2*3 {
		t.Errorf("Expected %d values, got %d", 10*2*3, values)
	}
	if lines[3] != "255 204 153 255 204 153 255 204 153 255 204 153 255 204 153" {
		t.Errorf("Unexpected first data line %q", lines[3])
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected Format
		wantErr  bool
	}{
		{"ppm", PPM, false},
		{"PNG", PNG, false},
		{".bmp", BMP, false},
		{"gif", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("ParseFormat(%q): expected ErrUnknownFormat, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.expected {
			t.Errorf("ParseFormat(%q): expected %q, got %q (%v)", tt.in, tt.expected, got, err)
		}
	}

	if PNG.Extension() != ".png" || PPM.ContentType() != "image/x-portable-pixmap" || BMP.ContentType() != "image/bmp" {
		t.Error("Unexpected format metadata")
	}
}

func testCanvas() *canvas.Canvas {
	c := canvas.New(4, 3)
	c.WritePixel(1, 2, core.NewColor(1, 0.5, 0))
	return c
}

func assertDecoded(t *testing.T, img image.Image) {
	t.Helper()
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("Expected 4x3 image, got %v", img.Bounds())
	}
	r, g, b, _ := img.At(1, 2).RGBA()
	if r>>8 != 255 || g>>8 != 128 || b>>8 != 0 {
		t.Errorf("Expected (255,128,0), got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
	if got := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("Expected black at (0,0), got %v", got)
	}
}

func TestEncodePNG(t *testing.T) {
	data, err := EncodeBytes(testCanvas(), PNG)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	assertDecoded(t, img)
}

func TestEncodeBMP(t *testing.T) {
	data, err := EncodeBytes(testCanvas(), BMP)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to decode BMP: %v", err)
	}
	assertDecoded(t, img)
}

func TestEncode_UnknownFormat(t *testing.T) {
	if _, err := EncodeBytes(testCanvas(), Format("tiff")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "nested", "out.ppm")

	if err := Save(filename, testCanvas(), PPM); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n4 3\n255\n") {
		t.Errorf("Unexpected file contents %q", data)
	}

	if err := Save(filename, testCanvas(), Format("gif")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}
