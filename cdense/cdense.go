package cdense

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

var (
	// ErrBadShape indicates non-positive requested dimensions.
	ErrBadShape = errors.New("cdense: invalid shape")

	// ErrOutOfRange indicates a row or column index outside bounds.
	ErrOutOfRange = errors.New("cdense: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("cdense: dimension mismatch")

	// ErrNonSquare signals a square matrix was required.
	ErrNonSquare = errors.New("cdense: matrix is not square")
)

// CDense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type CDense struct {
	r, c int
	data []complex128
}

// New creates an r×c CDense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*CDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &CDense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *CDense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *CDense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or ErrOutOfRange.
func (m *CDense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("CDense(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *CDense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *CDense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (m *CDense) Clone() *CDense {
	data := make([]complex128, len(m.data))
	copy(data, m.data)

	return &CDense{r: m.r, c: m.c, data: data}
}

// Equal reports element-wise equality within tolerance eps on both the
// real and imaginary parts.
// Complexity: O(r*c).
func (m *CDense) Equal(other *CDense, eps float64) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	var d complex128
	for i := range m.data {
		d = m.data[i] - other.data[i]
		if math.Abs(real(d)) > eps || math.Abs(imag(d)) > eps {
			return false
		}
	}

	return true
}

// Mul returns the matrix product a·b.
// Contracts: a.Cols() == b.Rows(); otherwise ErrDimensionMismatch.
// Complexity: O(r·n·c).
func Mul(a, b *CDense) (*CDense, error) {
	if a == nil || b == nil || a.c != b.r {
		return nil, ErrDimensionMismatch
	}
	out := &CDense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c)}

	var (
		i, j, k int
		sum     complex128
	)
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			sum = 0
			for k = 0; k < a.c; k++ {
				sum += a.data[i*a.c+k] * b.data[k*b.c+j]
			}
			out.data[i*b.c+j] = sum
		}
	}

	return out, nil
}

// Scale multiplies every element by alpha, in place, and returns m for
// chaining.
// Complexity: O(r*c).
func (m *CDense) Scale(alpha complex128) *CDense {
	for i := range m.data {
		m.data[i] *= alpha
	}

	return m
}

// Trace returns the sum of diagonal elements.
// Contracts: square matrix; otherwise ErrNonSquare.
// Complexity: O(r).
func (m *CDense) Trace() (complex128, error) {
	if m.r != m.c {
		return 0, ErrNonSquare
	}
	var tr complex128
	for i := 0; i < m.r; i++ {
		tr += m.data[i*m.c+i]
	}

	return tr, nil
}

// IsRealSymmetric reports whether every element is real (imaginary part
// within eps) and the matrix equals its transpose within eps.
// Complexity: O(r*c).
func (m *CDense) IsRealSymmetric(eps float64) bool {
	if m.r != m.c {
		return false
	}
	var a, b complex128
	for i := 0; i < m.r; i++ {
		for j := i; j < m.c; j++ {
			a = m.data[i*m.c+j]
			b = m.data[j*m.c+i]
			if math.Abs(imag(a)) > eps || math.Abs(imag(b)) > eps {
				return false
			}
			if math.Abs(real(a)-real(b)) > eps {
				return false
			}
		}
	}

	return true
}

// MaxAbs returns the largest element magnitude, useful for normalizing
// tolerances against matrix scale.
// Complexity: O(r*c).
func (m *CDense) MaxAbs() float64 {
	var out, v float64
	for i := range m.data {
		v = cmplx.Abs(m.data[i])
		if v > out {
			out = v
		}
	}

	return out
}

// String implements fmt.Stringer for debugging.
// Complexity: O(r*c).
func (m *CDense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ {
		s += "["
		for j = 0; j < m.c; j++ {
			s += fmt.Sprintf("%v", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
