package hypoct

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// deriveRootExtent computes the root center and full extent per axis.
// For axes where cfg.Extent[j] > 0, that value is used directly as the
// extent, centered at the midpoint of the radius-inflated data bounding
// box. For axes that must be derived, the extent is
// the data's bounding box inflated to contain object radii, nudged by a
// small relative margin to avoid degenerate boundary placement.
func deriveRootExtent(x, siz []float64, n, d int, cfg Config) (center, extent []float64, err error) {
	center = make([]float64, d)
	extent = make([]float64, d)

	lower := make([]float64, n)
	upper := make([]float64, n)

	for j := 0; j < d; j++ {
		useExt := cfg.Extent != nil && cfg.Extent[j] > 0
		for i := 0; i < n; i++ {
			s := siz[i]
			v := x[i*d+j]
			lower[i] = v - s
			upper[i] = v + s
		}
		lo := floats.Min(lower)
		hi := floats.Max(upper)

		if useExt {
			extent[j] = cfg.Extent[j]
			center[j] = (lo + hi) / 2
			continue
		}

		span := hi - lo
		if span > 0 {
			span *= 1 + 1e-9
		}
		extent[j] = span
		center[j] = (lo + hi) / 2
	}

	if n > 1 {
		allZero := true
		for j := 0; j < d; j++ {
			if extent[j] > 0 {
				allZero = false
				break
			}
		}
		if allZero {
			return nil, nil, fmt.Errorf("hypoct: degenerate geometry: root extent is zero on every axis with %d objects", n)
		}
	}

	return center, extent, nil
}

func hasPositiveAxis(extent []float64) bool {
	for _, e := range extent {
		if e > 0 {
			return true
		}
	}
	return false
}

// eligibleAdaptive reports whether a node with the given occupancy, at
// the given level with the given cell extent, is eligible for
// subdivision under the adaptive predicate (spec.md §4.3).
func eligibleAdaptive(occupancy, level int, extent []float64, cfg Config) bool {
	if occupancy <= cfg.Occupancy {
		return false
	}
	if cfg.MaxLevel >= 0 && level >= cfg.MaxLevel {
		return false
	}
	return hasPositiveAxis(extent)
}

// nonTrivial reports whether a node is structurally capable of
// subdividing at all, regardless of its occupancy relative to cfg.Occupancy.
// Used by the uniform subdivision predicate.
func nonTrivial(occupancy, level int, extent []float64, cfg Config) bool {
	if occupancy == 0 {
		return false
	}
	if cfg.MaxLevel >= 0 && level >= cfg.MaxLevel {
		return false
	}
	return hasPositiveAxis(extent)
}

// buildBase runs the breadth-first adaptive construction of spec.md §4.3,
// producing the base representation: parent/xiOff/xiLen/octantMask in BFS
// order, the object permutation xi, and the per-level node-index offsets
// levelStart (levelStart[l] is the first node index of level l; the final
// entry is the total node count).
func buildBase(x, siz []float64, n, d int, cfg Config, rootCenter, rootExtent []float64) (
	parent, xiOff, xiLen []int, octantMask []uint32, xi []int, levelStart []int,
) {
	xi = make([]int, n)
	for i := range xi {
		xi[i] = i
	}

	parent = []int{0}
	xiOff = []int{0}
	xiLen = []int{n}
	octantMask = []uint32{0}
	levelStart = []int{0}
	centers := [][]float64{rootCenter}

	curStart, curEnd := 0, 1
	level := 0
	curExtent := rootExtent

	for {
		nextExtent := make([]float64, d)
		for j := 0; j < d; j++ {
			nextExtent[j] = curExtent[j] / 2
		}

		eligible := make([]bool, curEnd-curStart)
		anyAdaptive := false
		for i := curStart; i < curEnd; i++ {
			ok := eligibleAdaptive(xiLen[i], level, curExtent, cfg)
			eligible[i-curStart] = ok
			if ok {
				anyAdaptive = true
			}
		}
		if !anyAdaptive {
			break
		}
		if cfg.Subdivision == Uniform {
			for i := curStart; i < curEnd; i++ {
				eligible[i-curStart] = nonTrivial(xiLen[i], level, curExtent, cfg)
			}
		}

		anyFinal := false
		for _, ok := range eligible {
			if ok {
				anyFinal = true
				break
			}
		}
		if !anyFinal {
			break
		}

		nextLevelStart := len(parent)
		for i := curStart; i < curEnd; i++ {
			if !eligible[i-curStart] {
				continue
			}
			off, length := xiOff[i], xiLen[i]
			nodeCenter := centers[i]

			descStart := off
			if cfg.Mode != ModePoint {
				retainCount := partitionRetained(xi, off, off+length, d, x, siz, nodeCenter, curExtent)
				descStart = off + retainCount
			}

			blocks := partitionByOctant(xi, descStart, off+length, d, nodeCenter, x)
			for _, b := range blocks {
				parent = append(parent, i)
				xiOff = append(xiOff, b.off)
				xiLen = append(xiLen, b.len)
				octantMask = append(octantMask, b.mask)

				childCtr := make([]float64, d)
				childCenter(nodeCenter, curExtent, b.mask, childCtr)
				centers = append(centers, childCtr)
			}
		}

		newCount := len(parent) - nextLevelStart
		if newCount == 0 {
			break
		}

		levelStart = append(levelStart, nextLevelStart)
		curStart, curEnd = nextLevelStart, len(parent)
		level++
		curExtent = nextExtent
	}

	levelStart = append(levelStart, len(parent))
	return parent, xiOff, xiLen, octantMask, xi, levelStart
}
