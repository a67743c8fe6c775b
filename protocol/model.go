package protocol

import (
	"math"

	"github.com/katalvlaran/posverify/geom"
)

// Model is the validated, immutable product of a Config: the verifier
// set with one derived causality sphere per station. A Model owns its
// verifiers and claimed event for the lifetime of one analysis run.
type Model struct {
	verifiers []Verifier
	spheres   []geom.Sphere
	claimed   ClaimedEvent
	dim       int
	epsilon   float64
	attackers int
}

// NewModel validates cfg eagerly and derives the causality spheres.
//
// Stage 1 (Validate): non-empty verifier set, k ≥ 1, positive finite
// speed, non-negative finite timings and tolerance, consistent dimension
// across all positions and the claimed event.
// Stage 2 (Derive): radius_i = speed × elapsed_i (OneWay) or
// speed × elapsed_i / 2 (RoundTrip).
// Stage 3 (Freeze): clone all points so later caller mutation cannot
// reach into the model.
//
// Errors: protocol sentinels above; geom.ErrBadDimension /
// geom.ErrDimensionMismatch from point validation, surfaced unchanged.
//
// Complexity: O(V·d) time, O(V·d) memory.
func NewModel(cfg Config) (*Model, error) {
	if len(cfg.Verifiers) == 0 {
		return nil, ErrNoVerifiers
	}

	speed := cfg.SignalSpeed
	if speed == 0 {
		speed = DefaultSignalSpeed
	}
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed <= 0 {
		return nil, ErrBadSpeed
	}

	eps := cfg.Epsilon
	if eps == 0 {
		eps = DefaultEpsilon
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return nil, ErrBadEpsilon
	}

	attackers := cfg.Attackers
	if attackers == 0 {
		attackers = DefaultAttackers
	}
	if attackers < 1 {
		return nil, ErrBadAttackers
	}

	if cfg.Mode != RoundTrip && cfg.Mode != OneWay {
		return nil, ErrBadTimingMode
	}

	// Claimed event anchors the dimension for the whole round.
	claimedPos, err := geom.NewPoint(cfg.Claimed.Position...)
	if err != nil {
		return nil, err
	}
	dim := claimedPos.Dim()

	m := &Model{
		verifiers: make([]Verifier, len(cfg.Verifiers)),
		spheres:   make([]geom.Sphere, len(cfg.Verifiers)),
		claimed:   ClaimedEvent{Position: claimedPos, Time: cfg.Claimed.Time},
		dim:       dim,
		epsilon:   eps,
		attackers: attackers,
	}

	var (
		pos    geom.Point
		radius float64
	)
	for i, v := range cfg.Verifiers {
		pos, err = geom.NewPoint(v.Position...)
		if err != nil {
			return nil, err
		}
		if pos.Dim() != dim {
			return nil, geom.ErrDimensionMismatch
		}
		if math.IsNaN(v.Elapsed) || math.IsInf(v.Elapsed, 0) || v.Elapsed < 0 {
			return nil, ErrBadTiming
		}

		radius = speed * v.Elapsed
		if cfg.Mode == RoundTrip {
			radius /= 2
		}

		m.verifiers[i] = Verifier{ID: v.ID, Position: pos, Elapsed: v.Elapsed}
		m.spheres[i], err = geom.NewSphere(pos, radius)
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Dim returns the coordinate dimension of the round.
func (m *Model) Dim() int { return m.dim }

// Epsilon returns the boundary-classification tolerance.
func (m *Model) Epsilon() float64 { return m.epsilon }

// Attackers returns the coalition size k under analysis.
func (m *Model) Attackers() int { return m.attackers }

// Claimed returns the claimed event (the position is shared, not copied;
// treat it as read-only per Point conventions).
func (m *Model) Claimed() ClaimedEvent { return m.claimed }

// NumVerifiers returns the verifier count.
func (m *Model) NumVerifiers() int { return len(m.verifiers) }

// Verifier returns the i-th verifier.
// Errors: ErrVerifierIndex when i is out of range.
func (m *Model) Verifier(i int) (Verifier, error) {
	if i < 0 || i >= len(m.verifiers) {
		return Verifier{}, ErrVerifierIndex
	}

	return m.verifiers[i], nil
}

// Spheres returns the derived causality spheres in verifier order.
// The slice is a fresh copy; sphere centers remain shared read-only
// points.
// Complexity: O(V).
func (m *Model) Spheres() []geom.Sphere {
	out := make([]geom.Sphere, len(m.spheres))
	copy(out, m.spheres)

	return out
}

// ClaimSlack returns the signed slack of the claimed event against
// verifier i's causality sphere: radius − distance(claimed, station).
// Non-negative (within epsilon) means the claim is causally consistent
// with that verifier's measurement — the closed-form single-verifier
// oracle.
// Errors: ErrVerifierIndex.
// Complexity: O(d).
func (m *Model) ClaimSlack(i int) (float64, error) {
	if i < 0 || i >= len(m.spheres) {
		return 0, ErrVerifierIndex
	}

	// Dimensions were verified at construction; Slack cannot mismatch.
	return m.spheres[i].Slack(m.claimed.Position)
}

// ClaimConsistent reports whether the claimed event lies within every
// verifier's causality sphere under the model epsilon.
// Complexity: O(V·d).
func (m *Model) ClaimConsistent() bool {
	var slack float64
	for i := range m.spheres {
		slack, _ = m.ClaimSlack(i)
		if slack < -m.epsilon {
			return false
		}
	}

	return true
}
