// Package matrix implements a runtime-dimensioned matrix of float64 values
// together with the homogeneous 4×4 transforms used by the ray tracer.
//
// Operations that can fail return one of the sentinel errors below. Callers
// must branch on the error before using the result. Determinant, cofactor and
// inverse are only supported up to 4×4; larger matrices fail with
// ErrUnsupportedSize instead of producing a result.
package matrix

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// MaxCofactorSize is the largest matrix size supported by Determinant, Minor, Cofactor and Inverse
const MaxCofactorSize = 4

// Sentinel errors for matrix operations.
var (
	// ErrDimensionMismatch indicates operands whose dimensions are incompatible.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare indicates an operation that requires a square matrix.
	ErrNotSquare = errors.New("matrix: not square")

	// ErrIndexOutOfRange indicates a row or column index outside the matrix.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrUnsupportedSize indicates a determinant-based operation above MaxCofactorSize.
	ErrUnsupportedSize = errors.New("matrix: unsupported size")

	// ErrSingular indicates a matrix whose determinant is zero.
	ErrSingular = errors.New("matrix: singular")

	// ErrRagged indicates input rows of differing length, or no rows at all.
	ErrRagged = errors.New("matrix: ragged or empty rows")
)

// Matrix is a rows×cols matrix stored row-major.
// Operations never modify their receiver; they return fresh matrices.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New returns a zero-filled rows×cols matrix. It panics on non-positive dimensions.
func New(rows, cols int) Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix: invalid dimensions %dx%d", rows, cols))
	}
	return Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// FromRows builds a matrix from a slice of equally sized rows.
func FromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, ErrRagged
	}
	cols := len(rows[0])
	m := New(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return Matrix{}, errors.Wrapf(ErrRagged, "row %d has %d columns, want %d", i, len(row), cols)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// MustFromRows is FromRows for literal matrices; it panics on malformed input.
func MustFromRows(rows [][]float64) Matrix {
	m, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns the n×n identity matrix
func Identity(n int) Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns
func (m Matrix) Cols() int { return m.cols }

// IsSquare reports whether the matrix has as many rows as columns
func (m Matrix) IsSquare() bool { return m.rows == m.cols && m.rows > 0 }

// At returns the element at row r, column c. It panics if the indices are out of range.
func (m Matrix) At(r, c int) float64 {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(errors.Wrapf(ErrIndexOutOfRange, "at (%d,%d) of %dx%d", r, c, m.rows, m.cols))
	}
	return m.data[r*m.cols+c]
}

// Set stores v at row r, column c. It panics if the indices are out of range.
func (m *Matrix) Set(r, c int, v float64) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(errors.Wrapf(ErrIndexOutOfRange, "set (%d,%d) of %dx%d", r, c, m.rows, m.cols))
	}
	m.data[r*m.cols+c] = v
}

// Clone returns a deep copy
func (m Matrix) Clone() Matrix {
	out := Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Multiply returns m·other. It fails with ErrDimensionMismatch unless m.Cols() == other.Rows().
// Time: O(r*n*c).
func (m Matrix) Multiply(other Matrix) (Matrix, error) {
	if m.cols != other.rows || m.rows == 0 || other.cols == 0 {
		return Matrix{}, errors.Wrapf(ErrDimensionMismatch, "multiply %dx%d by %dx%d", m.rows, m.cols, other.rows, other.cols)
	}
	out := New(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			sum := 0.0
			for k := 0; k < m.cols; k++ {
				sum += m.data[i*m.cols+k] * other.data[k*other.cols+j]
			}
			out.data[i*out.cols+j] = sum
		}
	}
	return out, nil
}

// MustMultiply is Multiply for operands whose dimensions the caller has already validated
func MustMultiply(a, b Matrix) Matrix {
	out, err := a.Multiply(b)
	if err != nil {
		panic(err)
	}
	return out
}

// MultiplyTuple treats t as a 4×1 column and returns m·t. m must be 4×4.
func (m Matrix) MultiplyTuple(t core.Tuple) (core.Tuple, error) {
	if m.rows != 4 || m.cols != 4 {
		return core.Tuple{}, errors.Wrapf(ErrDimensionMismatch, "multiply %dx%d by tuple", m.rows, m.cols)
	}
	d := m.data
	return core.Tuple{
		X: d[0]*t.X + d[1]*t.Y + d[2]*t.Z + d[3]*t.W,
		Y: d[4]*t.X + d[5]*t.Y + d[6]*t.Z + d[7]*t.W,
		Z: d[8]*t.X + d[9]*t.Y + d[10]*t.Z + d[11]*t.W,
		W: d[12]*t.X + d[13]*t.Y + d[14]*t.Z + d[15]*t.W,
	}, nil
}

// MustMultiplyTuple is MultiplyTuple for matrices known to be 4×4
func (m Matrix) MustMultiplyTuple(t core.Tuple) core.Tuple {
	out, err := m.MultiplyTuple(t)
	if err != nil {
		panic(err)
	}
	return out
}

// Transpose swaps rows and columns of a square matrix
func (m Matrix) Transpose() (Matrix, error) {
	if !m.IsSquare() {
		return Matrix{}, errors.Wrapf(ErrNotSquare, "transpose %dx%d", m.rows, m.cols)
	}
	n := m.rows
	out := New(n, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out.data[c*n+r] = m.data[r*n+c]
		}
	}
	return out, nil
}

// Submatrix returns m with the given row and column removed.
// The result is always (rows-1)×(cols-1); a matrix smaller than 2×2 has no submatrix.
func (m Matrix) Submatrix(row, col int) (Matrix, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return Matrix{}, errors.Wrapf(ErrIndexOutOfRange, "submatrix (%d,%d) of %dx%d", row, col, m.rows, m.cols)
	}
	if m.rows < 2 || m.cols < 2 {
		return Matrix{}, errors.Wrapf(ErrDimensionMismatch, "submatrix of %dx%d", m.rows, m.cols)
	}
	out := New(m.rows-1, m.cols-1)
	i := 0
	for r := 0; r < m.rows; r++ {
		if r == row {
			continue
		}
		for c := 0; c < m.cols; c++ {
			if c == col {
				continue
			}
			out.data[i] = m.data[r*m.cols+c]
			i++
		}
	}
	return out, nil
}

// checkCofactorSize validates that m is square and no larger than MaxCofactorSize
func (m Matrix) checkCofactorSize(minSize int) error {
	if !m.IsSquare() {
		return errors.Wrapf(ErrNotSquare, "%dx%d", m.rows, m.cols)
	}
	if m.rows < minSize || m.rows > MaxCofactorSize {
		return errors.Wrapf(ErrUnsupportedSize, "%dx%d", m.rows, m.cols)
	}
	return nil
}

// Minor returns the determinant of Submatrix(row, col). Defined for 2×2 through 4×4.
func (m Matrix) Minor(row, col int) (float64, error) {
	if err := m.checkCofactorSize(2); err != nil {
		return 0, err
	}
	sub, err := m.Submatrix(row, col)
	if err != nil {
		return 0, err
	}
	return sub.Determinant()
}

// Cofactor returns Minor(row, col) negated when row+col is odd
func (m Matrix) Cofactor(row, col int) (float64, error) {
	minor, err := m.Minor(row, col)
	if err != nil {
		return 0, err
	}
	if (row+col)%2 == 1 {
		return -minor, nil
	}
	return minor, nil
}

// Determinant computes the determinant by cofactor expansion along row 0.
// A 1×1 matrix is its own determinant and 2×2 uses ad-bc directly.
func (m Matrix) Determinant() (float64, error) {
	if err := m.checkCofactorSize(1); err != nil {
		return 0, err
	}
	switch m.rows {
	case 1:
		return m.data[0], nil
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2], nil
	}

	det := 0.0
	for col := 0; col < m.cols; col++ {
		cofactor, err := m.Cofactor(0, col)
		if err != nil {
			return 0, err
		}
		det += m.data[col] * cofactor
	}
	return det, nil
}

// IsInvertible reports whether Inverse would succeed
func (m Matrix) IsInvertible() bool {
	det, err := m.Determinant()
	return err == nil && m.rows >= 2 && det != 0
}

// Inverse returns the inverse of a 2×2, 3×3 or 4×4 matrix.
// It fails with ErrSingular when the determinant is zero.
func (m Matrix) Inverse() (Matrix, error) {
	if err := m.checkCofactorSize(2); err != nil {
		return Matrix{}, err
	}
	det, err := m.Determinant()
	if err != nil {
		return Matrix{}, err
	}
	if det == 0 {
		return Matrix{}, ErrSingular
	}

	n := m.rows
	out := New(n, n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			cofactor, err := m.Cofactor(row, col)
			if err != nil {
				return Matrix{}, err
			}
			// writing to [col][row] transposes the cofactor matrix
			out.data[col*n+row] = cofactor / det
		}
	}
	return out, nil
}

// MustInverse is Inverse for matrices the caller guarantees to be invertible.
// A failure here is an invariant violation and panics.
func (m Matrix) MustInverse() Matrix {
	inv, err := m.Inverse()
	if err != nil {
		panic(errors.Wrap(err, "invariant violated: matrix must be invertible"))
	}
	return inv
}

// Equal compares element-wise within core.Epsilon. Matrices of different shapes are never equal.
func (m Matrix) Equal(other Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if !core.ApproxEqual(m.data[i], other.data[i]) {
			return false
		}
	}
	return true
}

// String formats the matrix one row per line
func (m Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		sb.WriteString("[")
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%.5f", m.data[r*m.cols+c])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
