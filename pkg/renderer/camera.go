package renderer

import (
	"math"

	"github.com/pkg/errors"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/matrix"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Camera maps canvas pixels to rays. The view plane sits one unit in front
// of the eye, and the transform orients the world relative to the camera.
type Camera struct {
	HSize       int     // Horizontal size in pixels
	VSize       int     // Vertical size in pixels
	FieldOfView float64 // Angle in radians spanned by the longer side
	HalfWidth   float64 // Half the view plane width in world units
	HalfHeight  float64 // Half the view plane height in world units
	PixelSize   float64 // World units covered by one pixel

	transform matrix.Matrix // world -> camera
	inverse   matrix.Matrix // camera -> world
}

// NewCamera creates a camera at the origin looking down -z
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   matrix.Identity(4),
		inverse:     matrix.Identity(4),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.HalfWidth = halfView
		c.HalfHeight = halfView / aspect
	} else {
		c.HalfWidth = halfView * aspect
		c.HalfHeight = halfView
	}
	c.PixelSize = c.HalfWidth * 2 / float64(hsize)

	return c
}

// NewCameraFromConfig creates a camera placed according to a scene's camera config
func NewCameraFromConfig(config scene.CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, errors.Errorf("invalid camera size %dx%d", config.Width, config.Height)
	}
	if config.FieldOfView <= 0 || config.FieldOfView >= math.Pi {
		return nil, errors.Errorf("field of view must be in (0, pi), got %f", config.FieldOfView)
	}
	c := NewCamera(config.Width, config.Height, config.FieldOfView)
	if err := c.SetViewTransform(config.From, config.To, config.Up); err != nil {
		return nil, err
	}
	return c, nil
}

// Transform returns the world-to-camera transform
func (c *Camera) Transform() matrix.Matrix {
	return c.transform
}

// SetTransform replaces the world-to-camera transform. It must be an invertible
// 4×4 matrix; otherwise the camera is left unchanged.
func (c *Camera) SetTransform(m matrix.Matrix) error {
	if m.Rows() != 4 || m.Cols() != 4 {
		return errors.Wrapf(matrix.ErrDimensionMismatch, "camera transform must be 4x4, got %dx%d", m.Rows(), m.Cols())
	}
	inv, err := m.Inverse()
	if err != nil {
		return errors.Wrap(err, "invalid camera transform")
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// SetViewTransform points the camera from one point toward another
func (c *Camera) SetViewTransform(from, to, up core.Tuple) error {
	return c.SetTransform(ViewTransform(from, to, up))
}

// ViewTransform returns the transform that moves the eye to from, looking at to.
// up only needs to point roughly upward. When up is parallel to the view
// direction the result is singular.
func ViewTransform(from, to, up core.Tuple) matrix.Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := matrix.MustFromRows([][]float64{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	})
	return matrix.MustMultiply(orientation, matrix.Translation(-from.X, -from.Y, -from.Z))
}

// RayForPixel returns the ray from the eye through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) geometry.Ray {
	inverse := c.inverse
	if inverse.Rows() == 0 {
		inverse = matrix.Identity(4)
	}

	// offset from the edge of the canvas to the pixel's center
	xOffset := (float64(px) + 0.5) * c.PixelSize
	yOffset := (float64(py) + 0.5) * c.PixelSize

	// the camera looks toward -z, so +x is to the left
	worldX := c.HalfWidth - xOffset
	worldY := c.HalfHeight - yOffset

	pixel := inverse.MustMultiplyTuple(core.Point(worldX, worldY, -1))
	origin := inverse.MustMultiplyTuple(core.Point(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return geometry.NewRay(origin, direction)
}
