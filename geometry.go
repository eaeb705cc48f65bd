package hypoct

import "math"

// octantOf returns the d-bit mask locating x within a cell centered at
// center: bit j is 1 iff x[j] >= center[j] (ties go to the upper half).
func octantOf(center, x []float64) uint32 {
	var mask uint32
	for j := range center {
		if x[j] >= center[j] {
			mask |= 1 << uint(j)
		}
	}
	return mask
}

// childCenter writes into dst the center of the child cell identified by
// mask within a parent cell of the given center and full extent.
func childCenter(parentCenter, parentExtent []float64, mask uint32, dst []float64) {
	for j := range parentCenter {
		half := parentExtent[j] / 4
		if mask&(1<<uint(j)) != 0 {
			dst[j] = parentCenter[j] + half
		} else {
			dst[j] = parentCenter[j] - half
		}
	}
}

// contains reports whether a sphere/box of the given radius centered at x
// fits entirely within a cell of the given center and full extent.
func contains(center, extent, x []float64, radius float64) bool {
	for j := range center {
		if math.Abs(x[j]-center[j])+radius > extent[j]/2 {
			return false
		}
	}
	return true
}

// minimumImage wraps delta into the minimum-image displacement under the
// given period. period <= 0 disables wrapping (non-periodic axis).
func minimumImage(delta, period float64) float64 {
	if period <= 0 {
		return delta
	}
	return delta - period*math.Round(delta/period)
}

// axisOverlap reports whether two intervals along one axis, centered at
// aCenter/bCenter with half-widths aHalf/bHalf, touch or overlap under
// minimum-image displacement with the given period (period <= 0 means
// the axis is not periodic). Touching is tested with a small relative
// tolerance so that intervals whose ends meet exactly are not pushed
// apart by rounding in the subtraction and the periodic wrap.
func axisOverlap(aCenter, aHalf, bCenter, bHalf, period float64) bool {
	d := minimumImage(aCenter-bCenter, period)
	tol := 1e-12 * (math.Abs(aCenter) + math.Abs(bCenter) + math.Abs(period))
	return math.Abs(d) <= aHalf+bHalf+tol
}
