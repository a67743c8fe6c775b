// Package protocol models one round of a position-verification protocol:
// a set of fixed verifier stations, their measured signal timings, and
// the spacetime event the prover claims to occupy.
//
// What:
//
//   - Verifier — station identity, position, measured elapsed time.
//   - ClaimedEvent — the prover's claimed location and claim time.
//   - Config — the full structured configuration surface: dimension,
//     signal speed, timing mode, numeric tolerance, verifiers, claimed
//     event, attacker-coalition size.
//   - Model — the validated, immutable product of a Config: one derived
//     causality sphere per verifier, ready for the feasibility solver.
//
// Why:
//
//   - The solver must never see half-validated input. NewModel performs
//     all ConfigurationError-class checks eagerly (empty verifier set,
//     inconsistent dimensions, negative timings, k < 1) and fails fast;
//     a constructed Model is guaranteed well-formed for its lifetime.
//
// Timing mode:
//
//   - Whether a measured elapsed time is a round trip (radius uses half
//     of it) or a one-way measurement (radius uses all of it) is
//     protocol-specific; it is an explicit Config choice, never a
//     hard-coded constant. The default is RoundTrip (echo protocols).
//
// Errors:
//
//   - ErrNoVerifiers, ErrBadAttackers, ErrBadSpeed, ErrBadTiming,
//     ErrBadEpsilon, plus geom dimension sentinels surfaced unchanged.
//
// Complexity: NewModel is O(V·d); all accessors O(1).
package protocol
