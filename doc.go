// Package posverify analyzes cryptographic position-verification
// protocols: fixed verifier stations exchange timed signals with a
// claimed prover location, and a coalition of colluding attackers tries
// to spoof that location within the bounds light-speed causality allows.
//
// 🚀 What is posverify?
//
//	A deterministic, almost-zero-dependency library built from two engines:
//		• Feasibility solver: minimax intersection of causality spheres —
//		  can any coalition of k attackers satisfy every verifier's timing?
//		• Operator builder: exact tensor-product observable matrices
//		  (Pauli-type operators, partitioned subsystems, 2^n × 2^n)
//		  for the payoff analysis of the quantum verification game.
//
// ✨ Why choose posverify?
//
//   - Explicit numerics – every tolerance travels in a config struct,
//     never in ambient state
//   - Strict sentinels – all user-facing failures are errors.Is-able
//   - Deterministic – fixed seeds, reproducible verdicts and witnesses
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under six subpackages:
//
//	geom/     — points, causality spheres, slack & containment predicates
//	protocol/ — verifier stations, claimed events, timing → radius model
//	feas/     — minimax light-cone feasibility solver (k ≥ 1 attackers)
//	cdense/   — complex dense matrix primitives (Kronecker, Jacobi eigen)
//	operator/ — tensor-product operator matrices, spectra, negativity
//	photon/   — two-mode Fock states under the Jz ladder operator
//
// Quick ASCII example (2D, three verifiers, one attacker):
//
//	    V1●───────●V2
//	       ╲     ╱
//	        ╲   ╱        Each verifier's timing induces a disc;
//	         ●V3         the solver asks: do the discs meet?
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/posverify
package posverify
