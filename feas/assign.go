// Package feas - coalition search: which attacker answers which
// verifier. Attackers are interchangeable, so candidate assignments are
// enumerated as restricted growth strings (canonical partition
// labelings), lazily and restartably, with admissible pairwise bounds
// pruning hopeless partitions before any projection work. When the
// partition count exceeds the budget, a deterministic greedy seeding
// plus single-move local search takes over; that path is a local
// optimum only and its result carries no global optimality bound.
package feas

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/posverify/geom"
)

// assignIter lazily enumerates restricted growth strings of length n
// with labels in [0, k): a[0] = 0 and a[i] ≤ max(a[0..i−1]) + 1.
// Each string is a canonical verifier→attacker partition; permuting
// attacker labels never produces a second visit.
type assignIter struct {
	a       []int
	k       int
	started bool
}

// newAssignIter prepares the iterator; the first next() yields the
// all-zeros assignment (every verifier on attacker 0).
func newAssignIter(n, k int) *assignIter {
	return &assignIter{a: make([]int, n), k: k}
}

// reset rewinds the iterator to its initial state.
func (it *assignIter) reset() {
	for i := range it.a {
		it.a[i] = 0
	}
	it.started = false
}

// next advances to the following canonical assignment; false when the
// enumeration is exhausted. The exposed slice is reused between calls.
// Complexity: O(n²) worst case per step (prefix-max rescan).
func (it *assignIter) next() bool {
	if !it.started {
		it.started = true

		return true
	}

	var maxPrefix int
	for i := len(it.a) - 1; i >= 1; i-- {
		maxPrefix = 0
		for j := 0; j < i; j++ {
			if it.a[j] > maxPrefix {
				maxPrefix = it.a[j]
			}
		}
		if it.a[i] <= maxPrefix && it.a[i] < it.k-1 {
			it.a[i]++
			for j := i + 1; j < len(it.a); j++ {
				it.a[j] = 0
			}

			return true
		}
	}

	return false
}

// countAssignments returns the number of restricted growth strings of
// length n with labels < k, saturating at cap+1 so callers can compare
// against a budget without overflow.
// Complexity: O(n·k).
func countAssignments(n, k, cap int) int {
	if n < 1 {
		return 0
	}
	// f[m] = completions for the remaining suffix given current max m.
	f := make([]int, k+1)
	for m := range f {
		f[m] = 1
	}
	var c int
	for i := n - 1; i >= 1; i-- {
		nf := make([]int, k+1)
		for m := 0; m < k; m++ {
			c = (m + 1) * f[m]
			if m+1 < k {
				c += f[m+1]
			}
			if c > cap {
				c = cap + 1
			}
			nf[m] = c
		}
		f = nf
	}

	return f[0]
}

// groupKey builds the memoization key for a verifier index subset.
func groupKey(indices []int) string {
	var b strings.Builder
	for i, idx := range indices {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(idx))
	}

	return b.String()
}

// coalitionSearch carries the shared state of one k>1 search: the memo
// of solved groups (the same subset recurs across many partitions) and
// a stream counter decorrelating restart randomness per fresh subset.
type coalitionSearch struct {
	e      *engine
	memo   map[string]groupResult
	stream uint64
}

// groupFor solves (or recalls) the k=1 subproblem over the given
// verifier indices.
func (cs *coalitionSearch) groupFor(indices []int) groupResult {
	key := groupKey(indices)
	if g, ok := cs.memo[key]; ok {
		return g
	}

	group := make([]geom.Sphere, len(indices))
	for i, idx := range indices {
		group[i] = cs.e.spheres[idx]
	}
	cs.stream++
	g := cs.e.solveGroup(group, cs.stream)
	cs.memo[key] = g

	return g
}

// boundFor returns the admissible pairwise lower bound for a subset
// without consuming projection budget.
func (cs *coalitionSearch) boundFor(indices []int) float64 {
	group := make([]geom.Sphere, len(indices))
	for i, idx := range indices {
		group[i] = cs.e.spheres[idx]
	}

	return pairLowerBound(group)
}

// solveCoalition searches over verifier→attacker assignments for k > 1.
// Returns the best minimax value, per-attacker witnesses (indexed by
// label, nil for unused labels), the assignment, and convergence.
func (e *engine) solveCoalition(k int) (float64, []geom.Point, []int, bool) {
	n := len(e.spheres)
	labels := k
	if labels > n {
		labels = n // more attackers than verifiers: extra labels idle
	}

	cs := &coalitionSearch{e: e, memo: make(map[string]groupResult)}

	if countAssignments(n, labels, e.opts.AssignmentBudget) <= e.opts.AssignmentBudget {
		return e.enumerate(cs, labels, k)
	}

	return e.localSearch(cs, labels, k)
}

// enumerate walks every canonical partition, pruning by pairwise bounds
// against the incumbent before spending projections.
func (e *engine) enumerate(cs *coalitionSearch, labels, k int) (float64, []geom.Point, []int, bool) {
	n := len(e.spheres)
	it := newAssignIter(n, labels)

	bestValue := math.Inf(1)
	var (
		bestAssign  []int
		bestWitness []geom.Point
		bestSolid   bool // every group of the incumbent converged
	)

	groups := make([][]int, labels)
	for it.next() {
		if e.exhausted {
			break
		}

		for g := range groups {
			groups[g] = groups[g][:0]
		}
		for v, a := range it.a {
			groups[a] = append(groups[a], v)
		}

		// Cheap admissible bound first (bb-style pruning).
		bound := math.Inf(-1)
		for _, g := range groups {
			if len(g) == 0 {
				continue
			}
			if b := cs.boundFor(g); b > bound {
				bound = b
			}
		}
		if bound >= bestValue {
			continue
		}

		value := math.Inf(-1)
		witness := make([]geom.Point, k)
		solid := true
		for label, g := range groups {
			if len(g) == 0 {
				continue
			}
			gr := cs.groupFor(g)
			witness[label] = gr.witness
			solid = solid && gr.converged
			if gr.value > value {
				value = gr.value
			}
		}

		if value < bestValue {
			bestValue = value
			bestAssign = append([]int(nil), it.a...)
			bestWitness = witness
			bestSolid = solid
		}
	}

	converged := bestAssign != nil && bestSolid && !e.exhausted

	return bestValue, bestWitness, bestAssign, converged
}

// localSearch is the over-budget fallback: deterministic farthest-point
// seeding of attacker groups by verifier geometry, then single-move
// improvement passes. The result is a local optimum; no global bound is
// claimed.
func (e *engine) localSearch(cs *coalitionSearch, labels, k int) (float64, []geom.Point, []int, bool) {
	n := len(e.spheres)

	seeds := farthestPointSeeds(e.spheres, labels)

	assign := make([]int, n)
	var d, best float64
	for v := range e.spheres {
		best = math.Inf(1)
		for s, seed := range seeds {
			d, _ = geom.Distance(e.spheres[v].Center, e.spheres[seed].Center)
			if d < best {
				best = d
				assign[v] = s
			}
		}
	}

	values, witnesses := e.evalAssignment(cs, assign, labels, k)
	overall := maxValue(values)

	// Single-move improvement passes; strictly improving moves only.
	maxPasses := 2 * n
	for pass := 0; pass < maxPasses && !e.exhausted; pass++ {
		improved := false
		for v := 0; v < n && !e.exhausted; v++ {
			cur := assign[v]
			for t := 0; t < labels; t++ {
				if t == cur {
					continue
				}
				assign[v] = t
				candValues, candWitness := e.evalAssignment(cs, assign, labels, k)
				cand := maxValue(candValues)
				if cand < overall-e.opts.SolveTol {
					overall = cand
					values, witnesses = candValues, candWitness
					cur = t
					improved = true
				} else {
					assign[v] = cur
				}
			}
		}
		if !improved {
			break
		}
	}

	return overall, witnesses, assign, !e.exhausted
}

// evalAssignment solves every non-empty group of an assignment and
// returns per-label values (−Inf for empty labels) and witnesses.
func (e *engine) evalAssignment(cs *coalitionSearch, assign []int, labels, k int) ([]float64, []geom.Point) {
	groups := make([][]int, labels)
	for v, a := range assign {
		groups[a] = append(groups[a], v)
	}

	values := make([]float64, labels)
	witnesses := make([]geom.Point, k)
	for label, g := range groups {
		if len(g) == 0 {
			values[label] = math.Inf(-1)
			continue
		}
		gr := cs.groupFor(g)
		values[label] = gr.value
		witnesses[label] = gr.witness
	}

	return values, witnesses
}

// maxValue reduces per-label values, ignoring −Inf empty labels.
func maxValue(values []float64) float64 {
	out := math.Inf(-1)
	for _, v := range values {
		if v > out {
			out = v
		}
	}

	return out
}

// farthestPointSeeds picks one representative verifier per attacker by
// greedy farthest-point traversal over sphere centers, starting at
// index 0. Ties resolve to the lowest index; fully deterministic.
// Complexity: O(k·n·d).
func farthestPointSeeds(spheres []geom.Sphere, k int) []int {
	seeds := []int{0}
	var d, nearest, bestSpread float64
	var pick int
	for len(seeds) < k {
		bestSpread = -1
		pick = -1
		for v := range spheres {
			nearest = math.Inf(1)
			for _, s := range seeds {
				d, _ = geom.Distance(spheres[v].Center, spheres[s].Center)
				if d < nearest {
					nearest = d
				}
			}
			if nearest > bestSpread {
				bestSpread = nearest
				pick = v
			}
		}
		if pick < 0 || bestSpread == 0 {
			break // fewer distinct centers than attackers
		}
		seeds = append(seeds, pick)
	}

	return seeds
}
