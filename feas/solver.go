// Package feas - solver engine: budgets, the k=1 group solver
// (closed-form 1D, bisection + alternating projections for d ≥ 2),
// and the public Solve dispatcher.
//
// Rationale (succinct):
//  1. Strict input validation happens before any iteration; a
//     constructed protocol.Model plus normalized Options cannot fail
//     mid-solve, only run out of budget.
//  2. Every inflation-level probe is a convex-feasibility question over
//     inflated balls, answered by projecting onto the most-violated
//     ball. Success certifies an upper bound with a concrete witness;
//     failure (projection cap + restarts exhausted) tightens the lower
//     bracket.
//  3. Budgets are soft and sparse: projection steps are counted exactly,
//     the wall-clock deadline is tested every 1024 steps.
package feas

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/posverify/geom"
	"github.com/katalvlaran/posverify/protocol"
)

// engine holds per-solve state and budgets. A dedicated struct (rather
// than closures) keeps hot-path state predictable and testable.
type engine struct {
	opts    Options
	epsilon float64
	dim     int
	claimed geom.Point
	spheres []geom.Sphere

	useDeadline bool
	deadline    time.Time
	steps       int  // projection steps consumed so far
	exhausted   bool // budget or deadline hit
}

// groupResult is the outcome of one k=1 subproblem: the certified
// minimax value over a verifier group, its witness point, and whether
// the bisection bracket closed within budget.
type groupResult struct {
	value     float64
	witness   geom.Point
	converged bool
}

// spend consumes one projection step and reports whether the solve may
// continue. The deadline test is sparse to keep overhead negligible.
func (e *engine) spend() bool {
	if e.exhausted {
		return false
	}
	e.steps++
	if e.steps >= e.opts.MaxIterations {
		e.exhausted = true

		return false
	}
	if e.useDeadline && (e.steps&deadlineMask) == 0 && time.Now().After(e.deadline) {
		e.exhausted = true

		return false
	}

	return true
}

// solveGroup computes the minimax value min_p max_{v∈group} violation
// for one verifier group. stream decorrelates restart randomness across
// groups and assignments.
//
// Complexity: 1D and singleton groups O(|g|·d); otherwise
// O(log((hi−lo)/tol) · ProjectionCap · |g| · d) worst case.
func (e *engine) solveGroup(group []geom.Sphere, stream uint64) groupResult {
	// Singleton group: the optimum sits at the center with value −r.
	if len(group) == 1 {
		return groupResult{
			value:     -group[0].Radius,
			witness:   group[0].Center.Clone(),
			converged: true,
		}
	}

	// 1D: closed-form interval intersection.
	// f(p) = max(p − min(c+r), max(c−r) − p); minimizer is the midpoint
	// of [max(c−r), min(c+r)] and the optimum is minus half the overlap.
	if e.dim == 1 {
		lo := math.Inf(-1)
		hi := math.Inf(1)
		for _, s := range group {
			if l := s.Center[0] - s.Radius; l > lo {
				lo = l
			}
			if h := s.Center[0] + s.Radius; h < hi {
				hi = h
			}
		}

		return groupResult{
			value:     (lo - hi) / 2,
			witness:   geom.Point{(lo + hi) / 2},
			converged: true,
		}
	}

	return e.bisect(group, stream)
}

// bisect runs the bracketed search on the inflation level t for d ≥ 2.
func (e *engine) bisect(group []geom.Sphere, stream uint64) groupResult {
	lo := pairLowerBound(group)
	witness, hi := e.bestStart(group)

	res := groupResult{value: hi, witness: witness, converged: false}
	if hi-lo <= e.opts.SolveTol {
		res.converged = true

		return res
	}

	rng := rngFromSeed(deriveSeed(e.opts.Seed, stream))

	var (
		mid, w float64
		p      geom.Point
		ok     bool
	)
	for hi-lo > e.opts.SolveTol {
		if e.exhausted {
			return res
		}
		mid = lo + (hi-lo)/2

		p, w, ok = e.probe(group, mid, res.witness, rng)
		if ok {
			// Certified: the witness achieves w ≤ mid + probe slack.
			if w < res.value {
				res.value = w
				res.witness = p
			}
			if w < mid {
				hi = w
			} else {
				// Slack kept w marginally above mid; still halve.
				hi = mid
			}
			if hi < lo {
				lo = hi
			}
		} else {
			lo = mid
		}
	}
	res.converged = !e.exhausted

	return res
}

// bestStart evaluates the deterministic candidate starts (claimed event,
// centroid of centers, each center) and returns the best as the initial
// witness together with its worst violation.
// Complexity: O(|g|²·d).
func (e *engine) bestStart(group []geom.Sphere) (geom.Point, float64) {
	centroid := make(geom.Point, e.dim)
	for _, s := range group {
		for j := 0; j < e.dim; j++ {
			centroid[j] += s.Center[j] / float64(len(group))
		}
	}

	best := e.claimed.Clone()
	bestV, _ := worstViolation(best, group, e.opts.ParallelThreshold)

	if v, _ := worstViolation(centroid, group, e.opts.ParallelThreshold); v < bestV {
		best, bestV = centroid, v
	}
	for _, s := range group {
		if v, _ := worstViolation(s.Center, group, e.opts.ParallelThreshold); v < bestV {
			best, bestV = s.Center.Clone(), v
		}
	}

	return best, bestV
}

// probe answers the convex-feasibility question "does any point satisfy
// violation ≤ t for every sphere in the group?" by alternating
// projections onto the most-violated inflated ball, with perturbed
// restarts on failure. Returns the witness and its exact worst
// violation on success.
func (e *engine) probe(group []geom.Sphere, t float64, start geom.Point, rng *rand.Rand) (geom.Point, float64, bool) {
	// An inflated radius below zero empties that ball outright.
	for _, s := range group {
		if s.Radius+t < 0 {
			return nil, 0, false
		}
	}

	slack := e.opts.SolveTol
	scale := probeScale(group)

	p := start.Clone()
	for attempt := 0; attempt <= e.opts.Restarts; attempt++ {
		if attempt > 0 {
			// Deterministic perturbed restart around the best start.
			p = start.Clone()
			for j := range p {
				p[j] += (rng.Float64()*2 - 1) * scale
			}
		}

		for step := 0; step < e.opts.ProjectionCap; step++ {
			if !e.spend() {
				return nil, 0, false
			}

			w, idx := worstViolation(p, group, e.opts.ParallelThreshold)
			if w <= t+slack {
				return p, w, true
			}

			projectOntoBall(p, group[idx], t)
		}
	}

	return nil, 0, false
}

// projectOntoBall moves p to the nearest point of the ball with center
// s.Center and radius s.Radius + t. Only called when p lies strictly
// outside, so the direction vector is non-degenerate (distance > radius
// + t ≥ 0).
// Complexity: O(d).
func projectOntoBall(p geom.Point, s geom.Sphere, t float64) {
	d, _ := geom.Distance(p, s.Center)
	r := s.Radius + t
	if d == 0 {
		// Degenerate only when r < 0, which probe excludes.
		return
	}
	f := r / d
	for j := range p {
		p[j] = s.Center[j] + (p[j]-s.Center[j])*f
	}
}

// pairLowerBound returns the admissible lower bound on the group's
// minimax value:
//
//	max( max_v(−r_v), max_{u<v} (‖c_u−c_v‖ − r_u − r_v)/2 )
//
// The first term holds because no point beats −r_v against sphere v;
// the second because one point must serve both spheres of every pair.
// Complexity: O(|g|²·d).
func pairLowerBound(group []geom.Sphere) float64 {
	bound := math.Inf(-1)
	for _, s := range group {
		if -s.Radius > bound {
			bound = -s.Radius
		}
	}
	var d float64
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			d, _ = geom.Distance(group[i].Center, group[j].Center)
			if b := (d - group[i].Radius - group[j].Radius) / 2; b > bound {
				bound = b
			}
		}
	}

	return bound
}

// probeScale is the restart perturbation magnitude: the mean radius of
// the group, floored at 1 to stay meaningful for tiny spheres.
func probeScale(group []geom.Sphere) float64 {
	var sum float64
	for _, s := range group {
		sum += s.Radius
	}
	scale := sum / float64(len(group))
	if scale < 1 {
		scale = 1
	}

	return scale
}

// Solve runs the full feasibility analysis for the model's coalition
// size and returns the classified Result.
//
// Contracts:
//   - m non-nil (ErrNilModel otherwise); opts zero values fall back to
//     defaults, nonsensical values yield ErrBadOptions.
//
// Determinism: identical (model, opts) inputs produce identical results.
//
// Complexity: k=1 as solveGroup; k>1 multiplies by the number of
// enumerated partitions (≤ AssignmentBudget) or the local-search pass
// count.
func Solve(m *protocol.Model, opts Options) (Result, error) {
	if m == nil {
		return Result{}, ErrNilModel
	}
	normalized, err := opts.normalize()
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	e := &engine{
		opts:    normalized,
		epsilon: m.Epsilon(),
		dim:     m.Dim(),
		claimed: m.Claimed().Position,
		spheres: m.Spheres(),
	}
	if normalized.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = start.Add(normalized.TimeLimit)
	}

	k := m.Attackers()

	var (
		value      float64
		witnesses  []geom.Point
		assignment []int
		converged  bool
	)
	if k == 1 {
		g := e.solveGroup(e.spheres, 0)
		value = g.value
		witnesses = []geom.Point{g.witness}
		assignment = make([]int, len(e.spheres))
		converged = g.converged
	} else {
		value, witnesses, assignment, converged = e.solveCoalition(k)
	}

	res := Result{
		Margin:     -value,
		Assignment: assignment,
		Iterations: e.steps,
		Elapsed:    time.Since(start),
	}

	// Pad the witness out to k attackers; surplus attackers are
	// unconstrained and sit at the claimed event.
	if witnesses != nil {
		res.Witness = make([]geom.Point, k)
		for i := 0; i < k; i++ {
			if i < len(witnesses) && witnesses[i] != nil {
				res.Witness[i] = witnesses[i]
			} else {
				res.Witness[i] = e.claimed.Clone()
			}
		}
	}

	switch {
	case !converged:
		res.Verdict = NonConvergent
	case value <= -e.epsilon:
		res.Verdict = Feasible
	case value <= e.epsilon:
		res.Verdict = Degenerate
	default:
		res.Verdict = Infeasible
	}

	return res, nil
}
