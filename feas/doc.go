// Package feas is the minimax light-cone feasibility solver: given the
// causality spheres a protocol.Model derives from verifier timings, it
// decides whether a coalition of k attackers can simultaneously satisfy
// every verifier's constraint, and finds the worst-case-optimal
// (minimax) attacker configuration.
//
// Problem:
//
//	minimize over attacker points p₁..p_k and an assignment of verifiers
//	to attackers the value
//
//	    max over verifiers v of ( distance(p_a(v), center_v) − radius_v )
//
//	Negative optimum ⇒ a coalition fits strictly inside every sphere it
//	serves (FEASIBLE); positive ⇒ some verifier is necessarily violated
//	(INFEASIBLE); within ±ε ⇒ boundary (DEGENERATE).
//
// Algorithm:
//
//   - k = 1, d = 1: closed-form interval intersection. The margin is
//     exactly half the overlap (or half the gap, negated) of the
//     tightest interval pair.
//   - k = 1, d ≥ 2: bisection on the inflation level t, where each
//     probe answers "is the intersection of balls with radii r_v + t
//     non-empty?" by alternating projections onto the most-violated
//     ball (convex feasibility). The bracket is seeded by an admissible
//     pairwise lower bound max((‖c_u−c_v‖ − r_u − r_v)/2) and a witness
//     upper bound from deterministic candidate starts.
//   - k > 1: lazy enumeration of verifier→attacker partitions via
//     restricted growth strings (attackers are interchangeable, so only
//     canonical labelings are visited), each group solved as an
//     independent k=1 subproblem with pairwise-bound pruning; above
//     AssignmentBudget candidates, a deterministic greedy seeding plus
//     single-move local search runs instead (local optimum only).
//
// Determinism:
//
//   - Fixed seeds (SplitMix64 stream derivation), deterministic start
//     points and branching order; identical inputs yield identical
//     verdicts and witnesses.
//
// Budgets:
//
//   - MaxIterations bounds total projection steps; TimeLimit is a soft
//     deadline checked sparsely (every 1024 steps). Exhausting either
//     before the bisection bracket closes yields the distinct
//     NonConvergent verdict — never silently INFEASIBLE.
//
// Concurrency:
//
//   - The per-candidate violation scan across verifiers is a parallel
//     max-reduce above ParallelThreshold stations; the solver itself is
//     single-threaded and holds no shared mutable state, so independent
//     Solve calls may run concurrently.
//
// Errors:
//
//   - ErrNilModel, ErrBadOptions — ConfigurationError class, detected
//     before any solving work. All verdicts are normal return values.
package feas
