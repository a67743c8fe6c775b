// Package feas_test provides runnable examples for the feasibility
// solver, showing both code and expected output.
package feas_test

import (
	"fmt"

	"github.com/katalvlaran/posverify/feas"
	"github.com/katalvlaran/posverify/geom"
	"github.com/katalvlaran/posverify/protocol"
)

// ExampleSolve_overlap analyzes a 1D round with two stations whose
// causality intervals overlap: a single attacker standing in the
// overlap midpoint satisfies both timings.
func ExampleSolve_overlap() {
	// 1) Two stations on a line; round-trip timings at unit speed give
	//    radii 6 and 6, i.e. intervals [-6, 6] and [4, 16].
	cfg := protocol.Config{
		Verifiers: []protocol.Verifier{
			{ID: "west", Position: geom.Point{0}, Elapsed: 12},
			{ID: "east", Position: geom.Point{10}, Elapsed: 12},
		},
		// 2) The prover claims to stand at x = 5.
		Claimed: protocol.ClaimedEvent{Position: geom.Point{5}},
	}

	// 3) Validate the round and derive the causality spheres.
	m, err := protocol.NewModel(cfg)
	if err != nil {
		fmt.Println("config:", err)
		return
	}

	// 4) Solve with defaults: one attacker, closed-form in 1D.
	res, err := feas.Solve(m, feas.DefaultOptions())
	if err != nil {
		fmt.Println("solve:", err)
		return
	}

	// 5) The overlap [4, 6] has length 2: margin is half of it.
	fmt.Printf("%s margin=%.1f attacker at x=%.1f\n",
		res.Verdict, res.Margin, res.Witness[0][0])
	// Output:
	// FEASIBLE margin=1.0 attacker at x=5.0
}

// ExampleSolve_soundRound shows a sound round: the two intervals are
// disjoint, so no single attacker can serve both stations.
func ExampleSolve_soundRound() {
	cfg := protocol.Config{
		Verifiers: []protocol.Verifier{
			{ID: "west", Position: geom.Point{0}, Elapsed: 4},  // [-2, 2]
			{ID: "east", Position: geom.Point{10}, Elapsed: 4}, // [8, 12]
		},
		Claimed: protocol.ClaimedEvent{Position: geom.Point{5}},
	}

	m, err := protocol.NewModel(cfg)
	if err != nil {
		fmt.Println("config:", err)
		return
	}

	res, err := feas.Solve(m, feas.DefaultOptions())
	if err != nil {
		fmt.Println("solve:", err)
		return
	}

	fmt.Printf("%s margin=%.1f\n", res.Verdict, res.Margin)
	// Output:
	// INFEASIBLE margin=-3.0
}
