package feas

import (
	"math"
	"runtime"
	"sync"

	"github.com/katalvlaran/posverify/geom"
)

// violation returns dist(p, s.Center) − s.Radius: positive when p is
// outside the causality sphere, negative inside. Dimensions are
// guaranteed consistent by protocol.NewModel, so the distance error
// path is unreachable here.
// Complexity: O(d).
func violation(p geom.Point, s geom.Sphere) float64 {
	d, _ := geom.Distance(p, s.Center)

	return d - s.Radius
}

// worstViolation computes max over spheres of violation(p, s) together
// with the index of the most-violated sphere.
//
// For len(spheres) ≥ parallelThreshold the scan fans out into one chunk
// per CPU and reduces via max (spec'd map-reduce); the reduction is
// order-independent, so the result is deterministic either way. Ties
// resolve to the lowest sphere index in both paths.
//
// Contracts: spheres non-empty.
// Complexity: O(V·d) work, O(P) extra memory when parallel.
func worstViolation(p geom.Point, spheres []geom.Sphere, parallelThreshold int) (float64, int) {
	if len(spheres) < parallelThreshold {
		return worstViolationSeq(p, spheres, 0)
	}

	workers := runtime.NumCPU()
	if workers > len(spheres) {
		workers = len(spheres)
	}
	chunk := (len(spheres) + workers - 1) / workers

	type partial struct {
		value float64
		index int
	}
	parts := make([]partial, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(spheres) {
			hi = len(spheres)
		}
		if lo >= hi {
			parts[w] = partial{value: math.Inf(-1), index: -1}
			continue
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			v, i := worstViolationSeq(p, spheres[lo:hi], lo)
			parts[w] = partial{value: v, index: i}
		}(w, lo, hi)
	}
	wg.Wait()

	// Reduce with lowest-index tie-break for determinism.
	best := partial{value: math.Inf(-1), index: -1}
	for _, pt := range parts {
		if pt.index >= 0 && (pt.value > best.value ||
			(pt.value == best.value && pt.index < best.index)) {
			best = pt
		}
	}

	return best.value, best.index
}

// worstViolationSeq is the sequential scan; offset shifts reported
// indices back into the caller's frame.
func worstViolationSeq(p geom.Point, spheres []geom.Sphere, offset int) (float64, int) {
	worst := math.Inf(-1)
	worstIdx := -1
	var v float64
	for i := range spheres {
		v = violation(p, spheres[i])
		if v > worst {
			worst = v
			worstIdx = offset + i
		}
	}

	return worst, worstIdx
}
