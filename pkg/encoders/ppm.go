package encoders

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
)

// MaxPPMLineLength is the longest data line EncodePPM writes
const MaxPPMLineLength = 70

// EncodePPM writes c as a plain-text (P3) PPM image. Pixels are written in
// row-major order as "r g b" triplets, packed onto lines of at most
// MaxPPMLineLength characters without splitting a triplet.
func EncodePPM(w io.Writer, c *canvas.Canvas) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width(), c.Height())

	var line strings.Builder
	for _, px := range c.All() {
		triplet := fmt.Sprintf("%d %d %d", canvas.ToByte(px.R), canvas.ToByte(px.G), canvas.ToByte(px.B))
		if line.Len() > 0 && line.Len()+1+len(triplet) > MaxPPMLineLength {
			line.WriteByte('\n')
			bw.WriteString(line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(triplet)
	}
	if line.Len() > 0 {
		line.WriteByte('\n')
		bw.WriteString(line.String())
	}

	return errors.Wrap(bw.Flush(), "failed to write PPM")
}
