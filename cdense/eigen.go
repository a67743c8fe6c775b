package cdense

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrNotRealSymmetric indicates EigenSym was handed a matrix with
	// complex content or broken symmetry; the Jacobi scheme only
	// applies to real-symmetric matrices.
	ErrNotRealSymmetric = errors.New("cdense: matrix is not real symmetric within eps")

	// ErrEigenFailed indicates the Jacobi sweeps did not reduce the
	// off-diagonal mass below tol within maxSweeps.
	ErrEigenFailed = errors.New("cdense: eigen decomposition failed to converge")

	// ErrBadTolerance indicates a non-positive tolerance or sweep cap.
	ErrBadTolerance = errors.New("cdense: tolerance and sweep cap must be positive")
)

// EigenSym computes the eigenvalues of a real-symmetric matrix via
// cyclic Jacobi sweeps, returned in ascending order.
//
// Stage 1 (Validate): square shape, positive tol/maxSweeps, real
// symmetry within tol (scaled by the matrix magnitude).
// Stage 2 (Sweep): repeatedly rotate away each off-diagonal pair (p,q)
// in row order until the off-diagonal Frobenius mass drops below tol.
// Stage 3 (Finalize): sort the diagonal.
//
// Errors: ErrNonSquare, ErrBadTolerance, ErrNotRealSymmetric,
// ErrEigenFailed.
//
// Determinism: fixed (p,q) sweep order, no pivot searching.
//
// Complexity: O(maxSweeps · n³) worst case; symmetric matrices of the
// sizes the operator builder produces (n = 2^subsystems ≤ a few
// hundred) converge in a handful of sweeps.
func EigenSym(m *CDense, tol float64, maxSweeps int) ([]float64, error) {
	if m == nil || m.r != m.c {
		return nil, ErrNonSquare
	}
	if math.IsNaN(tol) || tol <= 0 || maxSweeps < 1 {
		return nil, ErrBadTolerance
	}

	// Symmetry gate scaled to the matrix magnitude so large integer
	// tensor products are not rejected for representation noise.
	scale := m.MaxAbs()
	if scale == 0 {
		return make([]float64, m.r), nil
	}
	if !m.IsRealSymmetric(tol * scale) {
		return nil, ErrNotRealSymmetric
	}

	n := m.r
	a := make([]float64, n*n)
	for i := range m.data {
		a[i] = real(m.data[i])
	}

	var (
		sweep, p, q, i          int
		off, apq, app, aqq      float64
		tau, t, c, s, aip, aiq  float64
		thresh                  float64
	)
	for sweep = 0; sweep < maxSweeps; sweep++ {
		off = 0
		for p = 0; p < n; p++ {
			for q = p + 1; q < n; q++ {
				off += 2 * a[p*n+q] * a[p*n+q]
			}
		}
		if math.Sqrt(off) <= tol*scale {
			diag := make([]float64, n)
			for i = 0; i < n; i++ {
				diag[i] = a[i*n+i]
			}
			sort.Float64s(diag)

			return diag, nil
		}

		// Rotation threshold shrinks with remaining off-diagonal mass.
		thresh = math.Sqrt(off) / float64(n)

		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				apq = a[p*n+q]
				if math.Abs(apq) < thresh/float64(n) {
					continue
				}
				app = a[p*n+p]
				aqq = a[q*n+q]

				tau = (aqq - app) / (2 * apq)
				if tau >= 0 {
					t = 1 / (tau + math.Sqrt(1+tau*tau))
				} else {
					t = -1 / (-tau + math.Sqrt(1+tau*tau))
				}
				c = 1 / math.Sqrt(1+t*t)
				s = t * c

				for i = 0; i < n; i++ {
					if i == p || i == q {
						continue
					}
					aip = a[i*n+p]
					aiq = a[i*n+q]
					a[i*n+p] = c*aip - s*aiq
					a[p*n+i] = a[i*n+p]
					a[i*n+q] = c*aiq + s*aip
					a[q*n+i] = a[i*n+q]
				}
				a[p*n+p] = app - t*apq
				a[q*n+q] = aqq + t*apq
				a[p*n+q] = 0
				a[q*n+p] = 0
			}
		}
	}

	return nil, ErrEigenFailed
}
