package feas

import (
	"errors"
	"time"

	"github.com/katalvlaran/posverify/geom"
)

var (
	// ErrNilModel indicates a nil *protocol.Model was passed to Solve.
	ErrNilModel = errors.New("feas: model is nil")

	// ErrBadOptions indicates an invalid Options field (negative
	// tolerance, non-positive caps). Detected before any solving work.
	ErrBadOptions = errors.New("feas: invalid options")
)

// Verdict classifies the outcome of a feasibility analysis.
type Verdict int

const (
	// Feasible — the minimized worst violation is ≤ −ε: an attacker
	// coalition exists with comfortable margin; the round is spoofable.
	Feasible Verdict = iota

	// Infeasible — the minimized worst violation is > ε: the round is
	// sound against the analyzed coalition size.
	Infeasible

	// Degenerate — the optimum lies within ±ε of zero: the round is
	// marginally sound/unsound and numerically ambiguous.
	Degenerate

	// NonConvergent — the iteration or time budget was exhausted before
	// the bisection bracket reached SolveTol. Distinct from Infeasible
	// by design; Margin then reports the best certified bound.
	NonConvergent
)

// String implements fmt.Stringer for log-friendly verdicts.
func (v Verdict) String() string {
	switch v {
	case Feasible:
		return "FEASIBLE"
	case Infeasible:
		return "INFEASIBLE"
	case Degenerate:
		return "DEGENERATE"
	case NonConvergent:
		return "NON-CONVERGENT"
	default:
		return "UNKNOWN"
	}
}

// Result is the value object returned by Solve. It carries numeric
// fields only and holds no back-reference to the solver or model, so
// front ends can render or serialize it freely.
type Result struct {
	// Verdict is the four-way classification.
	Verdict Verdict

	// Margin is the negated minimized worst violation: positive means
	// every constraint is satisfied with that much slack, negative
	// means the best coalition still violates some verifier by |Margin|.
	// Zero (within ε) at the boundary.
	Margin float64

	// Witness holds one point per attacker (length k) realizing Margin.
	// Attackers left unconstrained by the optimal assignment are placed
	// at the claimed event. Nil when Verdict is NonConvergent and no
	// certified witness was found.
	Witness []geom.Point

	// Assignment maps verifier index → attacker index under the best
	// partition found. For k = 1 it is all zeros.
	Assignment []int

	// Iterations is the total number of projection steps consumed.
	Iterations int

	// Elapsed is the wall time the solve took.
	Elapsed time.Duration
}
