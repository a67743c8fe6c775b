package operator

import (
	"math/cmplx"

	"github.com/katalvlaran/posverify/cdense"
)

// traceTol is the magnitude below which a trace counts as zero for
// normalization purposes.
const traceTol = 1e-12

// Default spectral settings for Negativity; exposed so callers running
// larger subsystem counts can loosen them.
const (
	DefaultEigenTol    = 1e-10
	DefaultEigenSweeps = 64
)

// NormalizeByTrace returns a copy of m scaled so its trace is 1, the
// density-matrix normalization the negativity diagnostic expects.
//
// Errors: cdense.ErrNonSquare for rectangular input, ErrZeroTrace when
// |tr m| ≤ traceTol.
// Complexity: O(dim²).
func NormalizeByTrace(m *cdense.CDense) (*cdense.CDense, error) {
	tr, err := m.Trace()
	if err != nil {
		return nil, err
	}
	if cmplx.Abs(tr) <= traceTol {
		return nil, ErrZeroTrace
	}

	return m.Clone().Scale(1 / tr), nil
}

// Negativity sums the negative eigenvalues of the trace-normalized
// matrix. Zero means no negative spectrum (separable-compatible for a
// partial transpose input); more negative means stronger entanglement
// witness.
//
// Stage 1: normalize by trace. Stage 2: diagonalize with
// cdense.EigenSym. Stage 3: accumulate eigenvalues below zero.
//
// Errors: those of NormalizeByTrace and cdense.EigenSym; in particular
// ErrNotRealSymmetric when the normalized matrix carries complex
// content.
// Complexity: dominated by the Jacobi sweeps, O(sweeps · dim³).
func Negativity(m *cdense.CDense, tol float64, maxSweeps int) (float64, error) {
	norm, err := NormalizeByTrace(m)
	if err != nil {
		return 0, err
	}
	eigs, err := cdense.EigenSym(norm, tol, maxSweeps)
	if err != nil {
		return 0, err
	}

	var neg float64
	for _, e := range eigs {
		if e < 0 {
			neg += e
		}
	}

	return neg, nil
}

// PartialTranspose transposes m over the low k of its n qubit
// subsystems: with row index i = (i_high << k) | i_low and column
// index j likewise, element (i, j) moves to
// ((i_high << k) | j_low, (j_high << k) | i_low).
//
// Applying it twice is the identity, and k = n is the full transpose.
//
// Contracts: m square with dimension exactly 2ⁿ, 0 ≤ k ≤ n.
// Errors: cdense.ErrNonSquare, ErrBadSubsystems for a dimension that
// is not 2ⁿ, ErrIndexOutOfRange for k outside [0, n].
// Complexity: O(4ⁿ).
func PartialTranspose(m *cdense.CDense, k, n int) (*cdense.CDense, error) {
	if m.Rows() != m.Cols() {
		return nil, cdense.ErrNonSquare
	}
	if n < 1 || m.Rows() != 1<<n {
		return nil, ErrBadSubsystems
	}
	if k < 0 || k > n {
		return nil, ErrIndexOutOfRange
	}

	dim := m.Rows()
	mask := (1 << k) - 1
	out, err := cdense.New(dim, dim)
	if err != nil {
		return nil, err
	}

	var i, j int
	var v complex128
	for i = 0; i < dim; i++ {
		for j = 0; j < dim; j++ {
			v, _ = m.At(i, j)
			_ = out.Set(i&^mask|j&mask, j&^mask|i&mask, v)
		}
	}

	return out, nil
}
