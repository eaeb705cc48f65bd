package hypoct

// childData holds the CSR child-pointer table of spec.md §4.4: children
// of node p are nodeIdx[chldp[p] : chldp[p+1]].
type childData struct {
	chldp []int
	chld  []int
}

// buildChildData inverts the parent array into a per-parent CSR child
// list via the standard two-pass counting-then-prefix-sum construction.
// Children of a given parent come out in ascending node-index order,
// which coincides with ascending octant_mask order because siblings are
// always emitted in mask order during construction.
func buildChildData(parent []int) *childData {
	k := len(parent)
	chldp := make([]int, k+1)

	for i := 1; i < k; i++ {
		chldp[parent[i]+1]++
	}
	for p := 0; p < k; p++ {
		chldp[p+1] += chldp[p]
	}

	chld := make([]int, k-1)
	if k > 1 {
		cursor := make([]int, k)
		copy(cursor, chldp[:k])
		for i := 1; i < k; i++ {
			p := parent[i]
			chld[cursor[p]] = i
			cursor[p]++
		}
	}

	return &childData{chldp: chldp, chld: chld}
}

// children returns the child node indices of p.
func (c *childData) children(p int) []int {
	return c.chld[c.chldp[p]:c.chldp[p+1]]
}

// isLeaf reports whether node k has no children.
func (c *childData) isLeaf(k int) bool {
	return c.chldp[k] == c.chldp[k+1]
}
