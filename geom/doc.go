// Package geom provides the geometric primitives of the
// position-verification analysis: points in 1–3 dimensions and causality
// spheres (center + light-speed radius) with distance, containment and
// slack predicates.
//
// What:
//
//   - Point — immutable coordinate vector, dimension d ∈ {1,2,3}.
//   - Sphere — causality sphere: center Point + non-negative radius.
//   - Distance, Contains, Slack — the three predicates every feasibility
//     question reduces to.
//
// Why:
//
//   - A verifier's measured signal time bounds where a responder can be;
//     that bound is exactly a sphere around the verifier. Soundness of a
//     protocol round is a statement about sphere intersections.
//
// Numeric policy:
//
//   - Every boundary classification takes an explicit epsilon; the
//     package holds no ambient tolerance state, so FEASIBLE/INFEASIBLE
//     verdicts are reproducible in isolation.
//
// Errors:
//
//   - ErrDimensionMismatch: operands live in different dimensions.
//   - ErrBadDimension: dimension outside {1,2,3}.
//   - ErrNegativeRadius: sphere radius is negative or non-finite.
//
// Complexity: all predicates are O(d) time, O(1) memory.
package geom
