package feas_test

import (
	"testing"

	"github.com/katalvlaran/posverify/feas"
	"github.com/katalvlaran/posverify/geom"
	"github.com/katalvlaran/posverify/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// model builds a validated model or fails the test.
func model(t *testing.T, cfg protocol.Config) *protocol.Model {
	t.Helper()
	m, err := protocol.NewModel(cfg)
	require.NoError(t, err)

	return m
}

// line1D builds a 1D round-trip config from (position, radius) pairs:
// elapsed = 2·radius at unit speed.
func line1D(claimed float64, attackers int, stations ...[2]float64) protocol.Config {
	cfg := protocol.Config{
		Claimed:   protocol.ClaimedEvent{Position: geom.Point{claimed}},
		Attackers: attackers,
	}
	for _, s := range stations {
		cfg.Verifiers = append(cfg.Verifiers, protocol.Verifier{
			Position: geom.Point{s[0]},
			Elapsed:  2 * s[1],
		})
	}

	return cfg
}

// TestSolve_NilModel verifies the ConfigurationError path.
func TestSolve_NilModel(t *testing.T) {
	_, err := feas.Solve(nil, feas.DefaultOptions())
	assert.ErrorIs(t, err, feas.ErrNilModel)
}

// TestSolve_BadOptions verifies option validation happens before work.
func TestSolve_BadOptions(t *testing.T) {
	m := model(t, line1D(0, 1, [2]float64{0, 5}))

	opts := feas.DefaultOptions()
	opts.SolveTol = -1
	_, err := feas.Solve(m, opts)
	assert.ErrorIs(t, err, feas.ErrBadOptions)

	opts = feas.DefaultOptions()
	opts.TimeLimit = -1
	_, err = feas.Solve(m, opts)
	assert.ErrorIs(t, err, feas.ErrBadOptions)
}

// TestSolve_SingleVerifier checks the one-sphere case: the whole ball
// is admissible, the optimum sits at the center with margin = radius,
// and the claimed event's own admissibility is exactly the closed-form
// ClaimSlack oracle.
func TestSolve_SingleVerifier(t *testing.T) {
	// Claimed at distance 3 from the station, radius 5.
	cfg := line1D(3, 1, [2]float64{0, 5})
	m := model(t, cfg)

	res, err := feas.Solve(m, feas.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, feas.Feasible, res.Verdict)
	assert.InDelta(t, 5.0, res.Margin, eps, "optimum is the center, margin = radius")
	require.Len(t, res.Witness, 1)
	assert.InDelta(t, 0.0, res.Witness[0][0], eps)

	// Oracle: claimed slack = radius − distance = 2 ≥ 0, consistent.
	slack, err := m.ClaimSlack(0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, slack, eps)
	assert.True(t, m.ClaimConsistent())

	// Claim outside the sphere: solver still FEASIBLE (an attacker can
	// sit anywhere in the ball) but the oracle flags the claim itself.
	m2 := model(t, line1D(9, 1, [2]float64{0, 5}))
	res2, err := feas.Solve(m2, feas.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, feas.Feasible, res2.Verdict)
	assert.False(t, m2.ClaimConsistent())
}

// TestSolve_1DOverlap: two overlapping intervals ⇒ FEASIBLE with margin
// exactly half the overlap length, witness at the overlap midpoint.
func TestSolve_1DOverlap(t *testing.T) {
	// [-5, 5] and [2, 12]: overlap [2, 5], length 3.
	m := model(t, line1D(3, 1, [2]float64{0, 5}, [2]float64{7, 5}))

	res, err := feas.Solve(m, feas.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, feas.Feasible, res.Verdict)
	assert.InDelta(t, 1.5, res.Margin, eps, "half the overlap length")
	assert.InDelta(t, 3.5, res.Witness[0][0], eps, "overlap midpoint")
	assert.Equal(t, []int{0, 0}, res.Assignment)
}

// TestSolve_1DDisjoint: disjoint intervals ⇒ INFEASIBLE with |margin|
// exactly half the gap.
func TestSolve_1DDisjoint(t *testing.T) {
	// [-2, 2] and [8, 12]: gap (2, 8), length 6.
	m := model(t, line1D(0, 1, [2]float64{0, 2}, [2]float64{10, 2}))

	res, err := feas.Solve(m, feas.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, feas.Infeasible, res.Verdict)
	assert.InDelta(t, -3.0, res.Margin, eps, "minus half the gap length")
	assert.InDelta(t, 5.0, res.Witness[0][0], eps, "midpoint of the gap is least bad")
}

// TestSolve_1DTangent: intervals touching at one point ⇒ DEGENERATE.
func TestSolve_1DTangent(t *testing.T) {
	// [-5, 5] and [5, 15] touch at exactly 5.
	m := model(t, line1D(5, 1, [2]float64{0, 5}, [2]float64{10, 5}))

	res, err := feas.Solve(m, feas.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, feas.Degenerate, res.Verdict)
	assert.InDelta(t, 0.0, res.Margin, eps)
	assert.InDelta(t, 5.0, res.Witness[0][0], eps)
}

// scenario2D is a three-station instance where the circles pairwise
// intersect but share no common point.
//
//	V0 (0,0)  r=5.5
//	V1 (10,0) r=5.5
//	V2 (5,8)  r=4.5
func scenario2D(attackers int) protocol.Config {
	return protocol.Config{
		Verifiers: []protocol.Verifier{
			{ID: "V0", Position: geom.Point{0, 0}, Elapsed: 11},
			{ID: "V1", Position: geom.Point{10, 0}, Elapsed: 11},
			{ID: "V2", Position: geom.Point{5, 8}, Elapsed: 9},
		},
		Claimed:   protocol.ClaimedEvent{Position: geom.Point{5, 3}},
		Attackers: attackers,
	}
}

// TestSolve_2DThreeCircles_SingleAttacker: no common point ⇒ INFEASIBLE
// for k=1. The analytic optimum sits at x=5 (symmetry) with worst
// violation 28/9 − 3.5 ≈ 0.389.
func TestSolve_2DThreeCircles_SingleAttacker(t *testing.T) {
	m := model(t, scenario2D(1))

	res, err := feas.Solve(m, feas.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, feas.Infeasible, res.Verdict)
	assert.InDelta(t, -0.389, res.Margin, 0.05, "analytic worst violation ≈ 0.389")
}

// TestSolve_2DThreeCircles_TwoAttackers: splitting responsibility makes
// the round spoofable. The best split pairs V0 with V1 (their discs
// overlap by 1 along the axis, margin 0.5) and gives V2 its own
// attacker.
func TestSolve_2DThreeCircles_TwoAttackers(t *testing.T) {
	m := model(t, scenario2D(2))

	res, err := feas.Solve(m, feas.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, feas.Feasible, res.Verdict)
	assert.InDelta(t, 0.5, res.Margin, 1e-6, "(r0+r1−d01)/2")
	assert.Equal(t, []int{0, 0, 1}, res.Assignment)
	require.Len(t, res.Witness, 2)
	assert.InDelta(t, 5.0, res.Witness[0][0], 1e-6, "midpoint between V0 and V1")
	assert.InDelta(t, 0.0, res.Witness[0][1], 1e-6)
}

// TestSolve_MoreAttackersThanVerifiers: with k ≥ V every verifier gets
// a private attacker at its center; margin = smallest radius. Surplus
// attackers idle at the claimed event.
func TestSolve_MoreAttackersThanVerifiers(t *testing.T) {
	cfg := scenario2D(4)
	m := model(t, cfg)

	res, err := feas.Solve(m, feas.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, feas.Feasible, res.Verdict)
	assert.InDelta(t, 4.5, res.Margin, eps, "limited by the tightest sphere")
	require.Len(t, res.Witness, 4)
	assert.Equal(t, geom.Point{5, 3}, res.Witness[3], "surplus attacker at claimed event")
}

// TestSolve_Idempotent: identical input yields identical verdict,
// margin and witness (fixed seed, no hidden state).
func TestSolve_Idempotent(t *testing.T) {
	m := model(t, scenario2D(1))

	a, err := feas.Solve(m, feas.DefaultOptions())
	require.NoError(t, err)
	b, err := feas.Solve(m, feas.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, a.Verdict, b.Verdict)
	assert.Equal(t, a.Margin, b.Margin, "bit-identical margin under fixed seed")
	assert.Equal(t, a.Witness, b.Witness)
}

// TestSolve_RadiusMonotonicity: loosening any single verifier's timing
// never turns FEASIBLE into INFEASIBLE.
func TestSolve_RadiusMonotonicity(t *testing.T) {
	cfg := scenario2D(1)
	// Inflate all radii so a common region exists.
	for i := range cfg.Verifiers {
		cfg.Verifiers[i].Elapsed = 14 // radius 7
	}
	base, err := feas.Solve(model(t, cfg), feas.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, feas.Feasible, base.Verdict)

	for i := range cfg.Verifiers {
		loosened := scenario2D(1)
		for j := range loosened.Verifiers {
			loosened.Verifiers[j].Elapsed = 14
		}
		loosened.Verifiers[i].Elapsed = 16 // even looser

		res, errSolve := feas.Solve(model(t, loosened), feas.DefaultOptions())
		require.NoError(t, errSolve)
		assert.Equal(t, feas.Feasible, res.Verdict,
			"loosening verifier %d must not break feasibility", i)
	}
}

// TestSolve_ParallelScanMatchesSequential forces the parallel violation
// scan and checks the verdict and margin agree with the default path.
func TestSolve_ParallelScanMatchesSequential(t *testing.T) {
	m := model(t, scenario2D(1))

	seq, err := feas.Solve(m, feas.DefaultOptions())
	require.NoError(t, err)

	par := feas.DefaultOptions()
	par.ParallelThreshold = 1
	got, err := feas.Solve(m, par)
	require.NoError(t, err)

	assert.Equal(t, seq.Verdict, got.Verdict)
	assert.Equal(t, seq.Margin, got.Margin, "max-reduce is order-independent")
}

// TestSolve_NonConvergent: a one-step budget cannot close the bracket
// on a 2D instance; the verdict must be NON-CONVERGENT, not INFEASIBLE.
func TestSolve_NonConvergent(t *testing.T) {
	m := model(t, scenario2D(1))

	opts := feas.DefaultOptions()
	opts.MaxIterations = 1
	res, err := feas.Solve(m, opts)
	require.NoError(t, err)

	assert.Equal(t, feas.NonConvergent, res.Verdict)
	assert.Positive(t, res.Iterations)
}

// TestVerdict_String covers the stringer for all variants.
func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "FEASIBLE", feas.Feasible.String())
	assert.Equal(t, "INFEASIBLE", feas.Infeasible.String())
	assert.Equal(t, "DEGENERATE", feas.Degenerate.String())
	assert.Equal(t, "NON-CONVERGENT", feas.NonConvergent.String())
	assert.Equal(t, "UNKNOWN", feas.Verdict(99).String())
}
