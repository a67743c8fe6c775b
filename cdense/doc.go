// Package cdense provides the dense complex-matrix primitives shared by
// the operator builder: flat row-major storage, bounds-checked access,
// multiplication, trace, an in-place Kronecker-product accumulator and
// a Jacobi eigensolver for real-symmetric matrices.
//
// What:
//
//   - CDense — row-major complex128 matrix (the carrier of every
//     2^n × 2^n observable built by the operator package).
//   - KronAccumulator — grows block ⊗ acc inside one pre-sized buffer,
//     so building an n-subsystem tensor product peaks at a single
//     2^n × 2^n working set plus one 2×2 block.
//   - EigenSym — cyclic Jacobi sweeps for real-symmetric content,
//     feeding spectral analysis (negativity) of operator matrices.
//
// Why in-place Kronecker:
//
//	The natural recursive construction materializes partial products at
//	every level; for n subsystems that multiplies peak memory by ~4/3
//	and grows the call stack with n. The accumulator instead writes the
//	expanded matrix into the tail of its own buffer in descending index
//	order: each destination (i,j) of the 2m×2m product reads source
//	(i mod m, j mod m), whose flat index never exceeds the destination
//	index, so no source cell is clobbered before its last read.
//
// Errors:
//
//   - ErrBadShape, ErrOutOfRange, ErrDimensionMismatch — structural.
//   - ErrAccumulatorFull — GrowLeft beyond the pre-sized target.
//   - ErrNotRealSymmetric, ErrEigenFailed — eigensolver contract.
//
// Complexity: Kron growth step m→2m costs O(m²); the full n-subsystem
// build is O(4ⁿ) time, O(4ⁿ) memory — the output size itself.
package cdense
