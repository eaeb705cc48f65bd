package hypoct

// Tree is a constructed hyperoctree and its lazily materialized derived
// data, per spec.md §3 and §6. All exported slices use struct-of-arrays,
// BFS node ordering: node 0 is always the root.
type Tree struct {
	d           int
	mode        Mode
	occupancy   int
	maxLevel    int
	subdivision Subdivision
	workers     int

	x   []float64 // flat n*d
	siz []float64 // n

	rootCenter []float64
	rootExtent []float64

	// Parent, XiOff, XiLen, and OctantMask are indexed by node, in BFS
	// order. Xi is the object permutation; node k's objects are
	// Xi[XiOff[k] : XiOff[k]+XiLen[k]].
	Parent     []int
	XiOff      []int
	XiLen      []int
	OctantMask []uint32
	Xi         []int

	levelStart []int

	cd  *childData
	gd  *geomData
	nbd *neighborData
	ild *ilistData
}

// BuildTree constructs a hyperoctree over x (N rows of length d), with
// optional per-object radii siz (nil means every radius is zero; cfg.Mode
// still selects the retention and neighbor rules). It validates inputs
// and cfg, derives the root
// cell, and runs the breadth-first adaptive (or uniform) construction of
// spec.md §4.3. Derived data (child pointers, geometry, neighbor lists,
// interaction lists) are not computed here; they materialize lazily on
// first access.
func BuildTree(x [][]float64, siz []float64, d int, cfg Config) (*Tree, error) {
	if err := validateInputs(x, siz, d); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	if err := validateConfig(&cfg, d); err != nil {
		return nil, err
	}

	n := len(x)
	flatX := make([]float64, n*d)
	for i, row := range x {
		copy(flatX[i*d:(i+1)*d], row)
	}
	flatSiz := siz
	if flatSiz == nil {
		flatSiz = make([]float64, n)
	}

	rootCenter, rootExtent, err := deriveRootExtent(flatX, flatSiz, n, d, cfg)
	if err != nil {
		return nil, err
	}

	parent, xiOff, xiLen, octantMask, xi, levelStart := buildBase(flatX, flatSiz, n, d, cfg, rootCenter, rootExtent)

	return &Tree{
		d:           d,
		mode:        cfg.Mode,
		occupancy:   cfg.Occupancy,
		maxLevel:    cfg.MaxLevel,
		subdivision: cfg.Subdivision,
		workers:     cfg.Workers,
		x:           flatX,
		siz:         flatSiz,
		rootCenter:  rootCenter,
		rootExtent:  rootExtent,
		Parent:      parent,
		XiOff:       xiOff,
		XiLen:       xiLen,
		OctantMask:  octantMask,
		Xi:          xi,
		levelStart:  levelStart,
	}, nil
}

// Depth returns the tree's maximum level (root = level 0).
func (t *Tree) Depth() int {
	return len(t.levelStart) - 2
}

// LevelRange returns the half-open node-index range [start, end) of the
// given level. Levels beyond the tree's depth return an empty range.
func (t *Tree) LevelRange(level int) (start, end int) {
	if level < 0 || level >= len(t.levelStart)-1 {
		n := len(t.Parent)
		return n, n
	}
	return t.levelStart[level], t.levelStart[level+1]
}

// N returns the number of nodes in the tree.
func (t *Tree) N() int {
	return len(t.Parent)
}

// levelOf returns the level of node k.
func (t *Tree) levelOf(k int) int {
	for lvl := 0; lvl < len(t.levelStart)-1; lvl++ {
		if k < t.levelStart[lvl+1] {
			return lvl
		}
	}
	return len(t.levelStart) - 2
}

func (t *Tree) childData() *childData {
	if t.cd == nil {
		t.cd = buildChildData(t.Parent)
	}
	return t.cd
}

// ChildData materializes (if absent) and returns the CSR child-pointer
// table of spec.md §4.4: children of node p are chld[chldp[p]:chldp[p+1]].
func (t *Tree) ChildData() (chldp, chld []int) {
	cd := t.childData()
	return cd.chldp, cd.chld
}

func (t *Tree) geomData() *geomData {
	if t.gd == nil {
		t.gd = buildGeomData(t.rootCenter, t.rootExtent, t.Parent, t.OctantMask, t.levelStart, t.d, t.workers)
	}
	return t.gd
}

// GeometryData materializes (if absent) and returns the flat (k*d)
// per-node center and full-extent arrays of spec.md §4.5.
func (t *Tree) GeometryData() (ctr, l []float64) {
	gd := t.geomData()
	return gd.ctr, gd.l
}

// Neighbors materializes (or rebuilds, if per differs from the last
// call) the CSR neighbor list of spec.md §4.6 for the given periodicity
// vector. A nil per means no axis is periodic.
func (t *Tree) Neighbors(per []bool) (nborp, nbori []int) {
	nbd := t.neighborData(per)
	return nbd.nborp, nbd.nbori
}

func (t *Tree) neighborData(per []bool) *neighborData {
	per = normalizePer(per, t.d)
	if t.nbd != nil && boolSliceEqual(t.nbd.per, per) {
		return t.nbd
	}
	t.nbd = buildNeighborData(t.Parent, t.levelStart, t.childData(), t.geomData(), t.mode, t.d, per, t.rootExtent, t.workers)
	t.ild = nil // interaction lists depend on neighbor data; invalidate.
	return t.nbd
}

// InteractionLists materializes (if absent) and returns the CSR
// interaction list of spec.md §4.7. It auto-invokes Neighbors with a
// non-periodic vector if no neighbor list has been computed yet.
func (t *Tree) InteractionLists() (ilstp, ilsti []int) {
	if t.ild == nil {
		nbd := t.nbd
		if nbd == nil {
			nbd = t.neighborData(nil)
		}
		t.ild = buildIlistData(t.Parent, t.levelStart, t.childData(), nbd, t.mode, t.workers)
	}
	return t.ild.ilstp, t.ild.ilsti
}

func normalizePer(per []bool, d int) []bool {
	out := make([]bool, d)
	copy(out, per)
	return out
}

func boolSliceEqual(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
