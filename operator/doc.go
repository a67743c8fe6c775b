// Package operator builds the tensor-product observable matrices the
// verification protocol's payoff analysis consumes: n qubit subsystems,
// each carrying either the identity or a Pauli-type base operator
// raised to an integer exponent, combined by Kronecker product in fixed
// subsystem order into one 2ⁿ × 2ⁿ matrix.
//
// What:
//
//   - Base — a named 2×2 operator with a declared finite order
//     (PauliX/Y/Z are involutory, PhaseS has order 4).
//   - SubsystemSpec — n, per-subsystem (index, exponent) assignments,
//     and partition blocks: groups of subsystems sharing one
//     operator/exponent pair without per-index enumeration.
//   - Build — resolves the subsystem spec and accumulates the product with the
//     in-place cdense.KronAccumulator: peak memory is the output
//     matrix plus one 2×2 block.
//   - Cache — optional memoization keyed by the resolved spec;
//     entries are immutable value objects safe for concurrent reads.
//
// Exponent normalization:
//
//	Exponents reduce modulo the operator order with a true Euclidean
//	(non-negative) remainder, so X^(−1) = X and Z^(2k) = I without any
//	repeated multiplication; e and e+order yield bit-identical output.
//
// Spectral analysis (for the protocol's entanglement diagnostics):
//
//   - NormalizeByTrace, Negativity (sum of negative eigenvalues of the
//     trace-normalized matrix), PartialTranspose over the low k
//     subsystems.
//
// Errors:
//
//   - ErrBadSubsystems, ErrTooManySubsystems, ErrIndexOutOfRange,
//     ErrDuplicateIndex, ErrBadOrder, ErrZeroTrace — all detected
//     before any matrix work begins.
//
// Complexity: Build is O(4ⁿ) time and memory — the output size itself;
// nothing larger is ever materialized.
package operator
