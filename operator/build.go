package operator

import "github.com/katalvlaran/posverify/cdense"

// Build constructs the full 2ⁿ × 2ⁿ tensor-product matrix
//
//	b₀ ⊗ b₁ ⊗ … ⊗ b_{n−1}
//
// where bᵢ is Base^eᵢ for assigned subsystems and the identity
// otherwise.
//
// Stage 1 (Validate): n ∈ [1, MaxSubsystems], Base.Order ≥ 1, every
// assignment/block index in range and mentioned at most once.
// Stage 2 (Resolve): reduce each exponent modulo the base order with a
// non-negative remainder and raise the 2×2 block by repeated
// multiplication (at most Order−1 products).
// Stage 3 (Accumulate): feed the blocks right-to-left into a
// cdense.KronAccumulator; peak memory is the output buffer itself.
//
// Errors: ErrBadSubsystems, ErrTooManySubsystems, ErrBadOrder,
// ErrIndexOutOfRange, ErrDuplicateIndex.
//
// Determinism: the result is a pure function of the resolved exponent
// vector; exponents e and e+Order produce bit-identical matrices.
//
// Complexity: O(4ⁿ) time and memory.
func Build(spec SubsystemSpec) (*cdense.CDense, error) {
	exps, err := resolveExponents(spec)
	if err != nil {
		return nil, err
	}

	acc, err := cdense.NewKronAccumulator(1 << spec.N)
	if err != nil {
		return nil, err
	}
	for i := spec.N - 1; i >= 0; i-- {
		if err = acc.GrowLeft(blockFor(spec.Base, exps[i])); err != nil {
			return nil, err
		}
	}

	return acc.Matrix()
}

// resolveExponents validates the subsystem spec and flattens assignments and
// blocks into one normalized exponent per subsystem, with −1 marking
// an unassigned (identity) slot.
func resolveExponents(spec SubsystemSpec) ([]int, error) {
	if spec.N < 1 {
		return nil, ErrBadSubsystems
	}
	if spec.N > MaxSubsystems {
		return nil, ErrTooManySubsystems
	}
	if spec.Base.Order < 1 {
		return nil, ErrBadOrder
	}

	exps := make([]int, spec.N)
	assigned := make([]bool, spec.N)
	for i := range exps {
		exps[i] = -1
	}

	claim := func(idx, exp int) error {
		if idx < 0 || idx >= spec.N {
			return ErrIndexOutOfRange
		}
		if assigned[idx] {
			return ErrDuplicateIndex
		}
		assigned[idx] = true
		exps[idx] = normalizeExponent(exp, spec.Base.Order)

		return nil
	}

	for _, a := range spec.Assignments {
		if err := claim(a.Index, a.Exponent); err != nil {
			return nil, err
		}
	}
	for _, b := range spec.Blocks {
		for _, idx := range b.Indices {
			if err := claim(idx, b.Exponent); err != nil {
				return nil, err
			}
		}
	}

	return exps, nil
}

// normalizeExponent reduces e modulo order with a non-negative
// (Euclidean) remainder, so X^(−1) resolves to X^1.
func normalizeExponent(e, order int) int {
	return ((e % order) + order) % order
}

// blockFor raises the base block to the already-normalized exponent.
// An unassigned slot (exp == −1) and exponent 0 both yield the
// identity.
func blockFor(b Base, exp int) cdense.Block2 {
	if exp <= 0 {
		return identityBlock
	}
	out := b.M
	for e := 1; e < exp; e++ {
		out = mulBlock(out, b.M)
	}

	return out
}

// mulBlock multiplies two 2×2 blocks.
func mulBlock(a, b cdense.Block2) cdense.Block2 {
	var out cdense.Block2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j]
		}
	}

	return out
}
