package geom

import (
	"errors"
	"math"
)

// MaxDimension bounds the supported coordinate dimensions.
// The protocol geometry is physical: 1D (a line of stations), 2D (a
// plane) or 3D (space). Higher dimensions are rejected at construction.
const MaxDimension = 3

var (
	// ErrBadDimension indicates a dimension outside {1,2,3}.
	ErrBadDimension = errors.New("geom: dimension must be 1, 2 or 3")

	// ErrDimensionMismatch indicates operands of differing dimensions.
	ErrDimensionMismatch = errors.New("geom: dimension mismatch")

	// ErrNegativeRadius indicates a negative or non-finite sphere radius.
	ErrNegativeRadius = errors.New("geom: radius must be finite and non-negative")
)

// Point is a coordinate vector in a fixed dimension.
// Points are value objects: once constructed they must not be mutated.
type Point []float64

// NewPoint validates coords and returns an owned copy as a Point.
// Stage 1 (Validate): dimension within {1..MaxDimension}, finite coords.
// Stage 2 (Copy): defensive copy so the caller cannot alias internals.
// Complexity: O(d).
func NewPoint(coords ...float64) (Point, error) {
	if len(coords) < 1 || len(coords) > MaxDimension {
		return nil, ErrBadDimension
	}
	for _, x := range coords {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, ErrBadDimension
		}
	}
	p := make(Point, len(coords))
	copy(p, coords)

	return p, nil
}

// Dim returns the dimension of the point.
// Complexity: O(1).
func (p Point) Dim() int { return len(p) }

// Clone returns an independent copy of p.
// Complexity: O(d).
func (p Point) Clone() Point {
	q := make(Point, len(p))
	copy(q, p)

	return q
}

// Distance returns the Euclidean distance between a and b.
// Contracts: a.Dim() == b.Dim(); otherwise ErrDimensionMismatch.
// Complexity: O(d).
func Distance(a, b Point) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	var sum, dx float64
	for i := range a {
		dx = a[i] - b[i]
		sum += dx * dx
	}

	return math.Sqrt(sum), nil
}

// Sphere is a causality sphere: every location from which a signal can
// reach (or be received from) the center within the measured time budget.
type Sphere struct {
	Center Point
	Radius float64
}

// NewSphere validates and constructs a causality sphere.
// The center is cloned; the sphere owns its copy.
// Complexity: O(d).
func NewSphere(center Point, radius float64) (Sphere, error) {
	if len(center) < 1 || len(center) > MaxDimension {
		return Sphere{}, ErrBadDimension
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
		return Sphere{}, ErrNegativeRadius
	}

	return Sphere{Center: center.Clone(), Radius: radius}, nil
}

// Slack returns the signed slack of p relative to s:
// radius − distance(p, center). Positive means strictly inside,
// zero on the boundary, negative outside.
// Contracts: p.Dim() == s.Center.Dim(); otherwise ErrDimensionMismatch.
// Complexity: O(d).
func (s Sphere) Slack(p Point) (float64, error) {
	d, err := Distance(p, s.Center)
	if err != nil {
		return 0, err
	}

	return s.Radius - d, nil
}

// Contains reports whether p lies on or inside s under tolerance eps:
// slack ≥ −eps. Boundary points (|slack| ≤ eps) are contained.
// Complexity: O(d).
func (s Sphere) Contains(p Point, eps float64) (bool, error) {
	slack, err := s.Slack(p)
	if err != nil {
		return false, err
	}

	return slack >= -eps, nil
}
