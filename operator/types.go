package operator

import (
	"errors"

	"github.com/katalvlaran/posverify/cdense"
)

// MaxSubsystems caps n so the 2ⁿ × 2ⁿ output stays within a few hundred
// megabytes of complex128 storage.
const MaxSubsystems = 12

var (
	// ErrBadSubsystems indicates a subsystem count below 1.
	ErrBadSubsystems = errors.New("operator: subsystem count must be at least 1")

	// ErrTooManySubsystems indicates n above MaxSubsystems; the output
	// matrix would not fit in reasonable memory.
	ErrTooManySubsystems = errors.New("operator: subsystem count exceeds MaxSubsystems")

	// ErrIndexOutOfRange indicates an assignment or block index outside
	// [0, n).
	ErrIndexOutOfRange = errors.New("operator: subsystem index out of range")

	// ErrDuplicateIndex indicates the same subsystem index appears in
	// more than one assignment or block.
	ErrDuplicateIndex = errors.New("operator: subsystem index assigned twice")

	// ErrBadOrder indicates a base operator with declared order < 1.
	ErrBadOrder = errors.New("operator: base operator order must be at least 1")

	// ErrZeroTrace indicates trace normalization of a traceless matrix.
	ErrZeroTrace = errors.New("operator: matrix trace is zero")
)

// Base is a named single-qubit operator together with its finite
// multiplicative order (the smallest e ≥ 1 with Base^e = I up to global
// phase is not required; Order only has to be a period, so exponents
// reduce modulo it).
type Base struct {
	Name  string
	Order int
	M     cdense.Block2
}

// Predefined bases. The Pauli matrices are involutory (order 2); the
// phase gate S = diag(1, i) has order 4.
var (
	PauliX = Base{Name: "X", Order: 2, M: cdense.Block2{{0, 1}, {1, 0}}}
	PauliY = Base{Name: "Y", Order: 2, M: cdense.Block2{{0, -1i}, {1i, 0}}}
	PauliZ = Base{Name: "Z", Order: 2, M: cdense.Block2{{1, 0}, {0, -1}}}
	PhaseS = Base{Name: "S", Order: 4, M: cdense.Block2{{1, 0}, {0, 1i}}}
)

// identityBlock is what unassigned subsystems carry.
var identityBlock = cdense.Block2{{1, 0}, {0, 1}}

// Assignment attaches an exponent of the base operator to one
// subsystem. Exponents may be negative or exceed the base order; they
// are reduced modulo the order before building.
type Assignment struct {
	Index    int
	Exponent int
}

// Block attaches one shared exponent to a whole group of subsystems,
// the partition form of an assignment list.
type Block struct {
	Indices  []int
	Exponent int
}

// SubsystemSpec describes one tensor-product observable: N subsystems
// in fixed order, a base operator, and the subsystems that carry a
// power of it. Subsystems mentioned nowhere carry the identity.
type SubsystemSpec struct {
	N           int
	Base        Base
	Assignments []Assignment
	Blocks      []Block
}
