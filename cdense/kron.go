package cdense

import "errors"

var (
	// ErrAccumulatorFull indicates a GrowLeft beyond the pre-sized
	// target dimension.
	ErrAccumulatorFull = errors.New("cdense: kron accumulator at target dimension")

	// ErrBadTarget indicates a target dimension that is not a positive
	// power of two.
	ErrBadTarget = errors.New("cdense: target dimension must be a power of two")
)

// Block2 is a single-subsystem 2×2 operator block, the only growth unit
// the accumulator accepts.
type Block2 [2][2]complex128

// KronAccumulator builds a chain of Kronecker products
//
//	b₀ ⊗ b₁ ⊗ … ⊗ b_{n−1}
//
// inside one pre-sized buffer. Feed blocks right-to-left (b_{n−1}
// first): each GrowLeft computes block ⊗ acc, doubling the live
// dimension, and the buffer never exceeds the target 2ⁿ × 2ⁿ matrix.
type KronAccumulator struct {
	buf    []complex128
	dim    int // live dimension of the accumulated matrix
	target int
}

// NewKronAccumulator allocates the buffer for a targetDim × targetDim
// result, where targetDim is a positive power of two (2ⁿ for n ≥ 0).
// The accumulator starts as the 1×1 identity.
// Complexity: O(targetDim²) memory.
func NewKronAccumulator(targetDim int) (*KronAccumulator, error) {
	if targetDim < 1 || targetDim&(targetDim-1) != 0 {
		return nil, ErrBadTarget
	}
	a := &KronAccumulator{
		buf:    make([]complex128, targetDim*targetDim),
		dim:    1,
		target: targetDim,
	}
	a.buf[0] = 1

	return a, nil
}

// Dim returns the live dimension of the accumulated matrix.
func (a *KronAccumulator) Dim() int { return a.dim }

// GrowLeft replaces the accumulated m×m matrix acc with block ⊗ acc,
// in place.
//
// Safety of the in-place expansion: the destination element (i, j) of
// the 2m×2m product reads source element (i mod m, j mod m). In flat
// indices, read = (i mod m)·m + (j mod m) ≤ i·2m + j = write, so
// writing in descending index order never clobbers a source cell
// before its final read.
//
// Errors: ErrAccumulatorFull once the target dimension is reached.
// Complexity: O(m²) for the growth step m → 2m.
func (a *KronAccumulator) GrowLeft(block Block2) error {
	m := a.dim
	if 2*m > a.target {
		return ErrAccumulatorFull
	}

	stride := 2 * m
	var i, j int
	for i = stride - 1; i >= 0; i-- {
		for j = stride - 1; j >= 0; j-- {
			a.buf[i*stride+j] = block[i/m][j/m] * a.buf[(i%m)*m+(j%m)]
		}
	}
	a.dim = stride

	return nil
}

// Matrix returns the accumulated result as a CDense.
//
// Contracts: the accumulator must have grown to its target dimension;
// otherwise ErrAccumulatorFull (the buffer tail would be garbage).
// The returned matrix owns the accumulator's buffer; reuse the
// accumulator only after the matrix is no longer needed, or Clone it.
func (a *KronAccumulator) Matrix() (*CDense, error) {
	if a.dim != a.target {
		return nil, ErrAccumulatorFull
	}

	return &CDense{r: a.dim, c: a.dim, data: a.buf}, nil
}

// Kron returns the Kronecker product a ⊗ b of two general matrices,
// allocating the result. Used by tests as the oracle for the in-place
// accumulator and by callers combining non-2×2 factors.
// Complexity: O(ra·ca·rb·cb).
func Kron(a, b *CDense) (*CDense, error) {
	if a == nil || b == nil {
		return nil, ErrDimensionMismatch
	}
	out, err := New(a.r*b.r, a.c*b.c)
	if err != nil {
		return nil, err
	}

	var ia, ja, ib, jb int
	var va complex128
	for ia = 0; ia < a.r; ia++ {
		for ja = 0; ja < a.c; ja++ {
			va = a.data[ia*a.c+ja]
			if va == 0 {
				continue
			}
			for ib = 0; ib < b.r; ib++ {
				for jb = 0; jb < b.c; jb++ {
					out.data[(ia*b.r+ib)*out.c+(ja*b.c+jb)] = va * b.data[ib*b.c+jb]
				}
			}
		}
	}

	return out, nil
}
