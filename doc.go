// Package hypoct builds and queries hyperoctrees: adaptive, axis-aligned
// spatial trees in arbitrary dimension d >= 1. Each internal node
// subdivides its cell into up to 2^d axis-aligned children.
//
// Basic usage:
//
//	cfg := hypoct.DefaultConfig()
//	cfg.Occupancy = 8
//	tree, err := hypoct.BuildTree(points, nil, d, cfg)
//	// tree.ChildData(), tree.GeometryData() materialize lazily on demand.
//
// # Object modes
//
// Points carry no size and are fully repartitioned at every level
// (Config.Mode = ModePoint, the default). Elements and sparse elements
// carry a per-object radius; objects too large to fit inside a child
// cell are retained at their highest-containing ancestor instead of
// descending, and are excluded from every descendant's range:
//
//	cfg.Mode = hypoct.ModeElement
//	cfg.Mode = hypoct.ModeSparseElement
//
// # Derived data
//
// Child pointers, per-node geometry, neighbor lists, and interaction
// lists are produced lazily and memoized on the Tree; each accessor
// auto-invokes its prerequisites if absent:
//
//	tree.ChildData()
//	tree.GeometryData()
//	tree.Neighbors(per)
//	tree.InteractionLists()
//	tree.Search(queries, sizes, mlvl)
package hypoct
