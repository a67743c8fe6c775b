package photon

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	// ErrNegativeOccupation indicates a basis ket with a negative photon
	// count in either mode.
	ErrNegativeOccupation = errors.New("photon: occupation numbers must be non-negative")

	// ErrEmptyState indicates a superposition with no terms.
	ErrEmptyState = errors.New("photon: state has no terms")
)

// Ket is one two-mode Fock basis state |Bx,By⟩.
type Ket struct {
	Bx, By int
}

// Term pairs a basis ket with its real coefficient.
type Term struct {
	Ket  Ket
	Coef float64
}

// FockState is a real-coefficient superposition of two-mode Fock basis
// kets. The zero value is not usable; build states with NewBasis or
// NewFockState.
type FockState struct {
	amp map[Ket]float64
}

// NewBasis returns the single-ket state |bx,by⟩ with coefficient 1.
// Errors: ErrNegativeOccupation.
func NewBasis(bx, by int) (*FockState, error) {
	return NewFockState([]Term{{Ket: Ket{Bx: bx, By: by}, Coef: 1}})
}

// NewFockState builds a superposition from terms. Coefficients of
// repeated kets accumulate; exact-zero totals are dropped.
// Errors: ErrNegativeOccupation for any ket, ErrEmptyState when
// nothing survives.
func NewFockState(terms []Term) (*FockState, error) {
	amp := make(map[Ket]float64, len(terms))
	for _, t := range terms {
		if t.Ket.Bx < 0 || t.Ket.By < 0 {
			return nil, fmt.Errorf("|%d,%d⟩: %w", t.Ket.Bx, t.Ket.By, ErrNegativeOccupation)
		}
		amp[t.Ket] += t.Coef
	}
	for k, c := range amp {
		if c == 0 {
			delete(amp, k)
		}
	}
	if len(amp) == 0 {
		return nil, ErrEmptyState
	}

	return &FockState{amp: amp}, nil
}

// Coefficient returns the coefficient of |bx,by⟩, zero when absent.
func (s *FockState) Coefficient(bx, by int) float64 {
	return s.amp[Ket{Bx: bx, By: by}]
}

// Len reports the number of non-zero terms.
func (s *FockState) Len() int { return len(s.amp) }

// Norm returns the Euclidean norm of the coefficient vector.
func (s *FockState) Norm() float64 {
	var sum float64
	for _, c := range s.amp {
		sum += c * c
	}

	return math.Sqrt(sum)
}

// Terms returns the superposition sorted by (Bx, By).
func (s *FockState) Terms() []Term {
	out := make([]Term, 0, len(s.amp))
	for k, c := range s.amp {
		out = append(out, Term{Ket: k, Coef: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ket.Bx != out[j].Ket.Bx {
			return out[i].Ket.Bx < out[j].Ket.Bx
		}

		return out[i].Ket.By < out[j].Ket.By
	})

	return out
}

// ApplyJz applies the two-mode angular-momentum ladder action
//
//	Jz|Bx,By⟩ = √((Bx+1)·By)·|Bx+1,By−1⟩ − √((By+1)·Bx)·|Bx−1,By+1⟩
//
// to every term and returns the resulting state. Terms whose ladder
// coefficient vanishes (an empty mode cannot be lowered) are dropped,
// as are exact cancellations.
//
// Errors: ErrEmptyState when the whole superposition is annihilated.
// Complexity: O(terms) plus the final sort inside any later rendering.
func (s *FockState) ApplyJz() (*FockState, error) {
	amp := make(map[Ket]float64, 2*len(s.amp))
	for k, c := range s.amp {
		if k.By > 0 {
			amp[Ket{Bx: k.Bx + 1, By: k.By - 1}] += c * math.Sqrt(float64((k.Bx+1)*k.By))
		}
		if k.Bx > 0 {
			amp[Ket{Bx: k.Bx - 1, By: k.By + 1}] -= c * math.Sqrt(float64((k.By+1)*k.Bx))
		}
	}
	for k, c := range amp {
		if c == 0 {
			delete(amp, k)
		}
	}
	if len(amp) == 0 {
		return nil, ErrEmptyState
	}

	return &FockState{amp: amp}, nil
}

// String renders the superposition in sorted ket order, e.g.
// "+1.414214·|1,0⟩ -1.000000·|0,1⟩" sorts as the (0,1) term first.
func (s *FockState) String() string {
	var sb strings.Builder
	for i, t := range s.Terms() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%+.6f·|%d,%d⟩", t.Coef, t.Ket.Bx, t.Ket.By)
	}

	return sb.String()
}
