package hypoct

// geomData holds the per-node center and full extent of spec.md §4.5.
type geomData struct {
	ctr []float64 // k*d, node centers
	l   []float64 // k*d, node full extents
}

func (g *geomData) center(k, d int) []float64 { return g.ctr[k*d : (k+1)*d] }
func (g *geomData) extent(k, d int) []float64 { return g.l[k*d : (k+1)*d] }

// buildGeomData reconstructs center and extent for every node, top-down,
// from the root extent and each node's octant-mask ancestry. Levels are
// independent of each other once the previous level is known, so each
// level's nodes may be materialized in parallel via the configured
// worker count (spec.md §5).
func buildGeomData(rootCenter, rootExtent []float64, parent []int, octantMask []uint32, levelStart []int, d, workers int) *geomData {
	k := len(parent)
	g := &geomData{ctr: make([]float64, k*d), l: make([]float64, k*d)}

	copy(g.ctr[0:d], rootCenter)
	copy(g.l[0:d], rootExtent)

	depth := len(levelStart) - 2
	for lvl := 1; lvl <= depth; lvl++ {
		start, end := levelStart[lvl], levelStart[lvl+1]
		splitRange(end-start, workers, func(lo, hi int) {
			for k := start + lo; k < start+hi; k++ {
				p := parent[k]
				pc := g.center(p, d)
				pe := g.extent(p, d)
				childCenter(pc, pe, octantMask[k], g.ctr[k*d:(k+1)*d])
				for j := 0; j < d; j++ {
					g.l[k*d+j] = pe[j] / 2
				}
			}
		})
	}

	return g
}
