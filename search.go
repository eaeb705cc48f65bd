package hypoct

// Search walks each query object from the root downward, at every level
// selecting the first child (in ascending node-index order) whose cell
// fully contains the query under its radius, per spec.md §4.8; a query
// lying exactly on a shared cell face is contained by more than one child
// and goes to the lower-indexed one. It returns a row per query: row i's
// entry at level l is the index of the node holding y[i] at that level,
// or 0 once descent has stopped (the root is never revisited as a stop
// value except at level 0, which is always node 0). Descent terminates
// at the smaller of the tree's maximum depth and mlvl; mlvl < 0 means
// uncapped.
//
// Grounded on the recursive top-down descent in kdtree.go's knnSearch:
// here the "prune" test is containment rather than a distance bound, and
// there is at most one matching branch per level instead of a
// nearest-neighbor heap.
func (t *Tree) Search(y [][]float64, sizQ []float64, mlvl int) ([][]int, error) {
	if err := validateInputs(y, sizQ, t.d); err != nil {
		return nil, err
	}
	cd := t.childData()
	g := t.geomData()

	depth := t.Depth()
	maxLvl := depth
	if mlvl >= 0 && mlvl < maxLvl {
		maxLvl = mlvl
	}

	m := len(y)
	trav := make([][]int, m)
	for i := range trav {
		row := make([]int, maxLvl+1)
		cur := 0
		row[0] = 0
		qy := y[i]
		var qsz float64
		if sizQ != nil {
			qsz = sizQ[i]
		}

		for lvl := 1; lvl <= maxLvl; lvl++ {
			next := 0
			for _, c := range cd.children(cur) {
				if contains(g.center(c, t.d), g.extent(c, t.d), qy, qsz) {
					next = c
					break
				}
			}
			row[lvl] = next
			if next == 0 {
				break
			}
			cur = next
		}
		trav[i] = row
	}

	return trav, nil
}
