// Package photon models two-mode Fock states, the photonic encoding of
// the verification token: |Bx,By⟩ counts photons in the horizontal and
// vertical polarization modes.
//
// What:
//
//   - FockState — a real-coefficient superposition of |Bx,By⟩ basis
//     kets, map-backed, with deterministic sorted rendering.
//   - NewBasis / NewFockState — constructors rejecting negative
//     occupation numbers.
//   - ApplyJz — the angular-momentum ladder action
//     Jz|Bx,By⟩ = √((Bx+1)·By)·|Bx+1,By−1⟩ − √((By+1)·Bx)·|Bx−1,By+1⟩,
//     with vanishing-coefficient terms dropped.
//
// Determinism: iteration over the internal map never leaks into output;
// Terms and String sort basis kets by (Bx, By).
//
// Errors: ErrNegativeOccupation, ErrEmptyState.
package photon
