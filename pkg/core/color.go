package core

// Color is an unclamped RGB triple. Values outside [0,1] are legal until an image is encoded.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply scales the color by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Hadamard returns the component-wise product of two colors
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equal compares two colors component-wise within Epsilon
func (c Color) Equal(other Color) bool {
	return ApproxEqual(c.R, other.R) &&
		ApproxEqual(c.G, other.G) &&
		ApproxEqual(c.B, other.B)
}
