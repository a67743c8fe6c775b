package feas

import (
	"testing"

	"github.com/katalvlaran/posverify/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains the iterator into copies of each assignment.
func collect(it *assignIter) [][]int {
	var out [][]int
	for it.next() {
		out = append(out, append([]int(nil), it.a...))
	}

	return out
}

// TestAssignIter_ThreeVerifiersTwoAttackers enumerates all canonical
// partitions of {0,1,2} into at most 2 blocks: exactly 4 of them.
func TestAssignIter_ThreeVerifiersTwoAttackers(t *testing.T) {
	it := newAssignIter(3, 2)
	got := collect(it)

	want := [][]int{
		{0, 0, 0},
		{0, 0, 1},
		{0, 1, 0},
		{0, 1, 1},
	}
	assert.Equal(t, want, got, "canonical RGS order")
}

// TestAssignIter_Reset verifies the iterator is restartable.
func TestAssignIter_Reset(t *testing.T) {
	it := newAssignIter(4, 3)
	first := collect(it)

	it.reset()
	second := collect(it)

	assert.Equal(t, first, second, "reset must replay the same sequence")
}

// TestAssignIter_SingleAttacker yields only the all-zeros assignment.
func TestAssignIter_SingleAttacker(t *testing.T) {
	it := newAssignIter(5, 1)
	got := collect(it)

	require.Len(t, got, 1)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, got[0])
}

// TestCountAssignments_MatchesIterator cross-checks the DP count
// against brute-force enumeration for a grid of small cases.
func TestCountAssignments_MatchesIterator(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for k := 1; k <= 4; k++ {
			it := newAssignIter(n, k)
			var brute int
			for it.next() {
				brute++
			}
			assert.Equal(t, brute, countAssignments(n, k, 1<<20),
				"n=%d k=%d", n, k)
		}
	}
}

// TestCountAssignments_Saturates verifies the cap clamp.
func TestCountAssignments_Saturates(t *testing.T) {
	// B(12) restricted to ≤ 4 blocks is far beyond a cap of 100.
	got := countAssignments(12, 4, 100)
	assert.Equal(t, 101, got, "count must saturate at cap+1")
}

// TestFarthestPointSeeds_Deterministic picks spread-out representatives
// with lowest-index tie-breaks.
func TestFarthestPointSeeds_Deterministic(t *testing.T) {
	mk := func(x, y float64) geom.Sphere {
		return geom.Sphere{Center: geom.Point{x, y}, Radius: 1}
	}
	spheres := []geom.Sphere{mk(0, 0), mk(1, 0), mk(10, 0), mk(10, 1)}

	// Distances from index 0: 1, 10, √101 — index 3 wins the first pick.
	seeds := farthestPointSeeds(spheres, 2)
	assert.Equal(t, []int{0, 3}, seeds)

	// Third pick ties at spread 1 between indices 1 and 2; lowest wins.
	seeds = farthestPointSeeds(spheres, 3)
	assert.Equal(t, []int{0, 3, 1}, seeds)
}

// TestFarthestPointSeeds_DegenerateCenters stops early when all centers
// coincide.
func TestFarthestPointSeeds_DegenerateCenters(t *testing.T) {
	s := geom.Sphere{Center: geom.Point{1, 1}, Radius: 2}
	seeds := farthestPointSeeds([]geom.Sphere{s, s, s}, 3)
	assert.Equal(t, []int{0}, seeds, "identical centers admit one seed")
}
