package feas

import (
	"math"
	"time"
)

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in DefaultOptions.
const (
	// DefaultSolveTol is the target width of the bisection bracket on
	// the minimax value. The classification band ε comes from the
	// protocol.Model, not from here; SolveTol only governs numerics.
	DefaultSolveTol = 1e-9

	// DefaultMaxIterations caps the total projection steps across the
	// whole solve (all bisection probes, all groups, all assignments).
	DefaultMaxIterations = 1_000_000

	// DefaultProjectionCap caps projection steps within one feasibility
	// probe before the probe is declared failed at that inflation level.
	DefaultProjectionCap = 1024

	// DefaultRestarts is the number of perturbed restarts a failed
	// probe is granted before giving up on its inflation level.
	DefaultRestarts = 2

	// DefaultAssignmentBudget caps how many canonical verifier
	// partitions the k>1 search enumerates exactly; beyond it the
	// greedy + local-search heuristic takes over.
	DefaultAssignmentBudget = 4096

	// DefaultParallelThreshold is the verifier count above which the
	// per-candidate violation scan fans out across goroutines.
	DefaultParallelThreshold = 64

	// defaultSeed is the fixed "zero" seed used when callers pass 0.
	defaultSeed int64 = 1

	// deadlineMask makes deadline checks sparse: every 1024 steps.
	deadlineMask = 1023
)

// Options configures a feasibility solve. The zero value of any field
// falls back to its documented default; use DefaultOptions for an
// explicit starting point.
type Options struct {
	// SolveTol is the bisection bracket width target (> 0).
	SolveTol float64

	// MaxIterations bounds total projection steps (> 0).
	MaxIterations int

	// ProjectionCap bounds projection steps per feasibility probe (> 0).
	ProjectionCap int

	// Restarts is the number of perturbed-start retries per probe (≥ 0).
	Restarts int

	// TimeLimit is a soft wall-clock deadline; 0 disables it.
	TimeLimit time.Duration

	// Seed drives the deterministic restart perturbations; 0 means the
	// fixed default seed. Same seed ⇒ identical results.
	Seed int64

	// AssignmentBudget caps exact partition enumeration for k > 1.
	AssignmentBudget int

	// ParallelThreshold is the verifier count that triggers the
	// parallel violation scan.
	ParallelThreshold int
}

// DefaultOptions returns the documented defaults.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		SolveTol:          DefaultSolveTol,
		MaxIterations:     DefaultMaxIterations,
		ProjectionCap:     DefaultProjectionCap,
		Restarts:          DefaultRestarts,
		TimeLimit:         0,
		Seed:              defaultSeed,
		AssignmentBudget:  DefaultAssignmentBudget,
		ParallelThreshold: DefaultParallelThreshold,
	}
}

// normalize resolves zero-value fields to defaults and validates the
// rest. Returns ErrBadOptions on nonsensical values.
func (o Options) normalize() (Options, error) {
	if o.SolveTol == 0 {
		o.SolveTol = DefaultSolveTol
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.ProjectionCap == 0 {
		o.ProjectionCap = DefaultProjectionCap
	}
	if o.AssignmentBudget == 0 {
		o.AssignmentBudget = DefaultAssignmentBudget
	}
	if o.ParallelThreshold == 0 {
		o.ParallelThreshold = DefaultParallelThreshold
	}
	if o.Seed == 0 {
		o.Seed = defaultSeed
	}

	switch {
	case math.IsNaN(o.SolveTol) || math.IsInf(o.SolveTol, 0) || o.SolveTol <= 0:
		return Options{}, ErrBadOptions
	case o.MaxIterations < 1 || o.ProjectionCap < 1:
		return Options{}, ErrBadOptions
	case o.Restarts < 0 || o.AssignmentBudget < 1 || o.ParallelThreshold < 1:
		return Options{}, ErrBadOptions
	case o.TimeLimit < 0:
		return Options{}, ErrBadOptions
	}

	return o, nil
}
