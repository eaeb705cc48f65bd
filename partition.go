package hypoct

// octantBlock describes one non-empty child octant produced by
// partitionByOctant: the object indices xi[off:off+len] all share mask.
type octantBlock struct {
	mask uint32
	off  int
	len  int
}

// partitionByOctant reorders xi[start:end] in place into contiguous
// blocks keyed by octant mask (relative to center), via counting sort.
// Returns the non-empty blocks in ascending mask order, which is also
// ascending node-index order once children are emitted from them.
func partitionByOctant(xi []int, start, end, d int, center, x []float64) []octantBlock {
	n := end - start
	if n == 0 {
		return nil
	}
	nOctants := 1 << uint(d)

	masks := make([]uint32, n)
	counts := make([]int, nOctants)
	for i := 0; i < n; i++ {
		idx := xi[start+i]
		m := octantOf(center, x[idx*d:(idx+1)*d])
		masks[i] = m
		counts[m]++
	}

	offsets := make([]int, nOctants+1)
	for m := 0; m < nOctants; m++ {
		offsets[m+1] = offsets[m] + counts[m]
	}

	tmp := make([]int, n)
	cursor := make([]int, nOctants)
	copy(cursor, offsets[:nOctants])
	for i := 0; i < n; i++ {
		m := masks[i]
		tmp[cursor[m]] = xi[start+i]
		cursor[m]++
	}
	copy(xi[start:end], tmp)

	blocks := make([]octantBlock, 0, nOctants)
	for m := 0; m < nOctants; m++ {
		if counts[m] > 0 {
			blocks = append(blocks, octantBlock{mask: uint32(m), off: start + offsets[m], len: counts[m]})
		}
	}
	return blocks
}

// partitionRetained reorders xi[start:end] in place so that objects too
// large to fit in their candidate child cell (per contains, evaluated
// against a half-size child cell centered via childCenter) occupy
// xi[start:start+retainCount), and objects that do fit occupy
// xi[start+retainCount:end). Returns retainCount.
func partitionRetained(xi []int, start, end, d int, x, siz []float64, parentCenter, parentExtent []float64) int {
	childExt := make([]float64, d)
	for j := 0; j < d; j++ {
		childExt[j] = parentExtent[j] / 2
	}
	cc := make([]float64, d)

	lo, hi := start, end-1
	for lo <= hi {
		idx := xi[lo]
		pt := x[idx*d : (idx+1)*d]
		mask := octantOf(parentCenter, pt)
		childCenter(parentCenter, parentExtent, mask, cc)
		if contains(cc, childExt, pt, siz[idx]) {
			xi[lo], xi[hi] = xi[hi], xi[lo]
			hi--
		} else {
			lo++
		}
	}
	return lo - start
}
