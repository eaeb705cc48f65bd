package hypoct

import "sort"

// neighborData holds the CSR neighbor list of spec.md §4.6: neighbors of
// node p are nbori[nborp[p] : nborp[p+1]], in ascending node-index order.
type neighborData struct {
	nborp []int
	nbori []int
	per   []bool
}

func (nd *neighborData) neighborsOf(p int) []int {
	return nd.nbori[nd.nborp[p]:nd.nborp[p+1]]
}

// selfPeriodicAdjacent reports whether node k's cell touches its own
// periodic image: true only when at least one axis is periodic and, on
// every periodic axis, the node's extent has not yet shrunk below the
// wrap period. In practice this holds only for the root, whose extent
// equals the period exactly.
func selfPeriodicAdjacent(k int, g *geomData, d int, per []bool, period []float64) bool {
	ext := g.extent(k, d)
	anyPeriodic := false
	for j := 0; j < d; j++ {
		if !per[j] {
			continue
		}
		anyPeriodic = true
		if ext[j] < period[j] {
			return false
		}
	}
	return anyPeriodic
}

// nodesAdjacent reports whether same-level nodes a and b touch or
// overlap under minimum-image displacement along periodic axes.
func nodesAdjacent(a, b int, g *geomData, d int, per []bool, period []float64) bool {
	if a == b {
		return selfPeriodicAdjacent(a, g, d, per, period)
	}
	ca, ea := g.center(a, d), g.extent(a, d)
	cb, eb := g.center(b, d), g.extent(b, d)
	for j := 0; j < d; j++ {
		p := 0.0
		if per[j] {
			p = period[j]
		}
		if !axisOverlap(ca[j], ea[j]/2, cb[j], eb[j]/2, p) {
			return false
		}
	}
	return true
}

// buildNeighborData enumerates per-node neighbor lists top-down, per
// spec.md §4.6: at level 0 only self-periodic adjacency can apply; at
// each deeper level, a node's same-level candidates are its siblings plus
// same-level children of its parent's already-known neighbors, and (in
// element/sparse_element mode) any parent-neighbor that was never
// subdivided is carried along directly as a coarser neighbor.
func buildNeighborData(parent []int, levelStart []int, cd *childData, g *geomData, mode Mode, d int, per []bool, rootExtent []float64, workers int) *neighborData {
	k := len(parent)
	nbor := make([][]int, k)

	period := make([]float64, d)
	for j := 0; j < d; j++ {
		if per[j] {
			period[j] = rootExtent[j]
		}
	}

	if selfPeriodicAdjacent(0, g, d, per, period) {
		nbor[0] = []int{0}
	}

	depth := len(levelStart) - 2
	for lvl := 1; lvl <= depth; lvl++ {
		start, end := levelStart[lvl], levelStart[lvl+1]
		splitRange(end-start, workers, func(lo, hi int) {
			for a := start + lo; a < start+hi; a++ {
				p := parent[a]
				var cand []int
				for _, c := range cd.children(p) {
					if nodesAdjacent(a, c, g, d, per, period) {
						cand = append(cand, c)
					}
				}
				for _, q := range nbor[p] {
					if cd.isLeaf(q) {
						if mode != ModePoint {
							cand = append(cand, q)
						}
						continue
					}
					for _, c := range cd.children(q) {
						if nodesAdjacent(a, c, g, d, per, period) {
							cand = append(cand, c)
						}
					}
				}
				nbor[a] = dedupSorted(cand)
			}
		})
	}

	nborp := make([]int, k+1)
	for i := 0; i < k; i++ {
		nborp[i+1] = nborp[i] + len(nbor[i])
	}
	nbori := make([]int, nborp[k])
	for i := 0; i < k; i++ {
		copy(nbori[nborp[i]:nborp[i+1]], nbor[i])
	}

	perCopy := make([]bool, d)
	copy(perCopy, per)
	return &neighborData{nborp: nborp, nbori: nbori, per: perCopy}
}

// dedupSorted sorts and deduplicates a slice of node indices in place.
func dedupSorted(s []int) []int {
	if len(s) == 0 {
		return nil
	}
	sort.Ints(s)
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
