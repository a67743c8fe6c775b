package protocol

import (
	"errors"

	"github.com/katalvlaran/posverify/geom"
)

// TimingMode selects how a verifier's measured elapsed time converts
// into a causality-sphere radius.
//
//   - RoundTrip — the measurement is challenge→response→receipt; the
//     one-way causal bound is speed × elapsed / 2.
//   - OneWay — the measurement is already a one-way transit time; the
//     bound is speed × elapsed.
type TimingMode int

const (
	// RoundTrip halves the elapsed time (echo-style protocols). Default.
	RoundTrip TimingMode = iota

	// OneWay uses the elapsed time whole (synchronized-clock protocols).
	OneWay
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultSignalSpeed is the propagation speed in natural units
	// (c = 1). Configure an explicit speed to work in SI units.
	DefaultSignalSpeed = 1.0

	// DefaultEpsilon is the boundary-classification tolerance shared by
	// the model's closed-form checks and the feasibility solver.
	DefaultEpsilon = 1e-9

	// DefaultAttackers is the coalition size when Config leaves it zero.
	DefaultAttackers = 1
)

var (
	// ErrNoVerifiers indicates an empty verifier set.
	ErrNoVerifiers = errors.New("protocol: at least one verifier required")

	// ErrBadAttackers indicates a non-positive coalition size.
	ErrBadAttackers = errors.New("protocol: attacker count must be >= 1")

	// ErrBadSpeed indicates a non-positive or non-finite signal speed.
	ErrBadSpeed = errors.New("protocol: signal speed must be finite and > 0")

	// ErrBadTiming indicates a negative or non-finite elapsed time.
	ErrBadTiming = errors.New("protocol: elapsed time must be finite and >= 0")

	// ErrBadEpsilon indicates a negative or non-finite tolerance.
	ErrBadEpsilon = errors.New("protocol: epsilon must be finite and >= 0")

	// ErrBadTimingMode indicates an unknown TimingMode value.
	ErrBadTimingMode = errors.New("protocol: unknown timing mode")

	// ErrVerifierIndex indicates an out-of-range verifier index.
	ErrVerifierIndex = errors.New("protocol: verifier index out of range")
)

// Verifier is one fixed station: an identity, a position, and the
// elapsed signal time it recorded for the round under analysis.
type Verifier struct {
	// ID is a caller-chosen label, carried through into results.
	ID string

	// Position is the station location; dimension must match Config.
	Position geom.Point

	// Elapsed is the recorded signal time (round-trip or one-way,
	// interpreted per Config.Mode). Must be finite and non-negative.
	Elapsed float64
}

// ClaimedEvent is the location/time the prover claims to occupy.
type ClaimedEvent struct {
	Position geom.Point
	Time     float64
}

// Config is the structured configuration surface for one analysis run.
// Zero values fall back to the documented defaults where sensible
// (SignalSpeed, Epsilon, Attackers); everything else is validated
// eagerly by NewModel.
type Config struct {
	// Verifiers are the stations of this round. Required, non-empty.
	Verifiers []Verifier

	// Claimed is the prover's claimed event. Required.
	Claimed ClaimedEvent

	// Mode selects round-trip vs one-way radius derivation.
	Mode TimingMode

	// SignalSpeed is the propagation speed; 0 means DefaultSignalSpeed.
	SignalSpeed float64

	// Epsilon is the boundary tolerance; 0 means DefaultEpsilon.
	Epsilon float64

	// Attackers is the coalition size k; 0 means DefaultAttackers.
	Attackers int
}
