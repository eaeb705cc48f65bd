package hypoct

import "testing"

func TestPartitionByOctant(t *testing.T) {
	// 1D: center at 0.5, four points split into two octants.
	x := []float64{0.1, 0.6, 0.4, 0.9}
	xi := []int{0, 1, 2, 3}
	center := []float64{0.5}

	blocks := partitionByOctant(xi, 0, 4, 1, center, x)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].mask != 0 || blocks[1].mask != 1 {
		t.Errorf("blocks not in ascending mask order: %+v", blocks)
	}

	for _, b := range blocks {
		for _, idx := range xi[b.off : b.off+b.len] {
			m := octantOf(center, x[idx:idx+1])
			if m != b.mask {
				t.Errorf("object %d has mask %d, want block mask %d", idx, m, b.mask)
			}
		}
	}
}

func TestPartitionByOctant_Empty(t *testing.T) {
	xi := []int{}
	if got := partitionByOctant(xi, 0, 0, 1, []float64{0}, []float64{}); got != nil {
		t.Errorf("expected nil blocks for empty range, got %v", got)
	}
}

func TestPartitionRetained(t *testing.T) {
	// 2D, parent centered at origin with extent 4x4 (child half-extent 1x1).
	// Object 0 sits at (0.5,0.5) with radius 0.2: fits in its child cell.
	// Object 1 sits at (0.9,0.9) with radius 1.2: straddles the child boundary.
	x := []float64{0.5, 0.5, 0.9, 0.9}
	siz := []float64{0.2, 1.2}
	xi := []int{0, 1}
	parentCenter := []float64{0, 0}
	parentExtent := []float64{4, 4}

	retainCount := partitionRetained(xi, 0, 2, 2, x, siz, parentCenter, parentExtent)
	if retainCount != 1 {
		t.Fatalf("retainCount = %d, want 1", retainCount)
	}
	if xi[0] != 1 {
		t.Errorf("retained object should be object 1, got xi[0]=%d", xi[0])
	}
	if xi[1] != 0 {
		t.Errorf("descending object should be object 0, got xi[1]=%d", xi[1])
	}
}

func TestPartitionRetained_AllFit(t *testing.T) {
	x := []float64{0.5, 0.5, -0.5, -0.5}
	siz := []float64{0.1, 0.1}
	xi := []int{0, 1}

	retainCount := partitionRetained(xi, 0, 2, 2, x, siz, []float64{0, 0}, []float64{4, 4})
	if retainCount != 0 {
		t.Errorf("retainCount = %d, want 0", retainCount)
	}
}
