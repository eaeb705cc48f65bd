package hypoct

// ilistData holds the CSR interaction list of spec.md §4.7: the
// interaction list of node p is nodeIdx[ilstp[p] : ilstp[p+1]].
type ilistData struct {
	ilstp []int
	ilsti []int
}

func (id *ilistData) interactionsOf(p int) []int {
	return id.ilsti[id.ilstp[p]:id.ilstp[p+1]]
}

// buildIlistData computes, for every non-root node a, the children of
// parent(a)'s neighbors that are not themselves neighbors of a: cells
// close enough to interact with a's region but far enough that a direct
// near-field (neighbor) relationship does not already cover them. In
// element/sparse_element mode, parent(a)'s own neighbors that were never
// subdivided are also candidates, mirroring the leaf carry-forward rule
// used when building neighbor lists. The root has no parent and so gets
// an empty list; leaves are handled the same as internal nodes, since
// "has children" is irrelevant to being on the far side of an
// interaction.
func buildIlistData(parent []int, levelStart []int, cd *childData, nd *neighborData, mode Mode, workers int) *ilistData {
	k := len(parent)
	ilst := make([][]int, k)

	depth := len(levelStart) - 2
	for lvl := 1; lvl <= depth; lvl++ {
		start, end := levelStart[lvl], levelStart[lvl+1]
		splitRange(end-start, workers, func(lo, hi int) {
			for a := start + lo; a < start+hi; a++ {
				p := parent[a]
				isNbor := make(map[int]bool, len(nd.neighborsOf(a)))
				for _, q := range nd.neighborsOf(a) {
					isNbor[q] = true
				}

				var cand []int
				for _, q := range nd.neighborsOf(p) {
					if cd.isLeaf(q) {
						if mode != ModePoint && !isNbor[q] {
							cand = append(cand, q)
						}
						continue
					}
					for _, c := range cd.children(q) {
						if c != a && !isNbor[c] {
							cand = append(cand, c)
						}
					}
				}
				ilst[a] = dedupSorted(cand)
			}
		})
	}

	ilstp := make([]int, k+1)
	for i := 0; i < k; i++ {
		ilstp[i+1] = ilstp[i] + len(ilst[i])
	}
	ilsti := make([]int, ilstp[k])
	for i := 0; i < k; i++ {
		copy(ilsti[ilstp[i]:ilstp[i+1]], ilst[i])
	}

	return &ilistData{ilstp: ilstp, ilsti: ilsti}
}
