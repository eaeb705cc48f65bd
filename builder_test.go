package hypoct

import "testing"

func TestDeriveRootExtent_Explicit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extent = []float64{10}
	x := []float64{0, 1, 2}
	siz := []float64{0, 0, 0}

	center, extent, err := deriveRootExtent(x, siz, 3, 1, cfg)
	if err != nil {
		t.Fatalf("deriveRootExtent: %v", err)
	}
	if extent[0] != 10 {
		t.Errorf("extent = %v, want [10]", extent)
	}
	if center[0] != 1 {
		t.Errorf("center = %v, want [1]", center)
	}
}

func TestDeriveRootExtent_Derived(t *testing.T) {
	cfg := DefaultConfig()
	x := []float64{0, 1, 2}
	siz := []float64{0, 0, 0}

	center, extent, err := deriveRootExtent(x, siz, 3, 1, cfg)
	if err != nil {
		t.Fatalf("deriveRootExtent: %v", err)
	}
	if extent[0] <= 2 {
		t.Errorf("derived extent %v should be inflated beyond the raw span 2", extent)
	}
	if center[0] != 1 {
		t.Errorf("center = %v, want [1]", center)
	}
}

func TestDeriveRootExtent_Degenerate(t *testing.T) {
	cfg := DefaultConfig()
	x := []float64{1, 1, 1}
	siz := []float64{0, 0, 0}

	_, _, err := deriveRootExtent(x, siz, 3, 1, cfg)
	if err == nil {
		t.Fatal("expected an error for degenerate zero-extent geometry")
	}
}

func TestDeriveRootExtent_SinglePointNoError(t *testing.T) {
	cfg := DefaultConfig()
	x := []float64{1}
	siz := []float64{0}

	_, extent, err := deriveRootExtent(x, siz, 1, 1, cfg)
	if err != nil {
		t.Fatalf("single-point geometry should not error, got %v", err)
	}
	if extent[0] != 0 {
		t.Errorf("single-point extent = %v, want [0]", extent)
	}
}

func TestEligibleAdaptive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Occupancy = 2

	if eligibleAdaptive(2, 0, []float64{1}, cfg) {
		t.Error("occupancy == cfg.Occupancy should not be eligible")
	}
	if !eligibleAdaptive(3, 0, []float64{1}, cfg) {
		t.Error("occupancy > cfg.Occupancy should be eligible")
	}
	if eligibleAdaptive(3, 0, []float64{0}, cfg) {
		t.Error("a node with zero extent on every axis cannot subdivide")
	}

	cfg.MaxLevel = 1
	if eligibleAdaptive(3, 1, []float64{1}, cfg) {
		t.Error("level >= MaxLevel should not be eligible")
	}
}

func TestBuildBase_UniformSubdivision(t *testing.T) {
	// Root splits into a 2-point node and a 1-point node. Under adaptive
	// subdivision the 1-point node (already at the occupancy threshold)
	// stays a leaf; under uniform subdivision it splits anyway because a
	// sibling at the same level was eligible.
	x := pts1D([]float64{0.1, 0.4, 0.9})

	adaptiveCfg := DefaultConfig()
	adaptiveCfg.Occupancy = 1
	adaptiveCfg.Extent = []float64{1}
	adaptiveTree, err := BuildTree(x, nil, 1, adaptiveCfg)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	_, adaptiveEnd := adaptiveTree.LevelRange(2)
	adaptiveStart, _ := adaptiveTree.LevelRange(2)
	if adaptiveEnd-adaptiveStart != 2 {
		t.Fatalf("adaptive level 2 has %d nodes, want 2 (only the 2-point sibling splits)", adaptiveEnd-adaptiveStart)
	}

	uniformCfg := adaptiveCfg
	uniformCfg.Subdivision = Uniform
	uniformTree, err := BuildTree(x, nil, 1, uniformCfg)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	uniformStart, uniformEnd := uniformTree.LevelRange(2)
	if uniformEnd-uniformStart != 3 {
		t.Fatalf("uniform level 2 has %d nodes, want 3 (both siblings split)", uniformEnd-uniformStart)
	}
}

func TestBuildBase_MaxLevel(t *testing.T) {
	x := pts1D([]float64{0.01, 0.02, 0.03, 0.99})
	cfg := DefaultConfig()
	cfg.Occupancy = 1
	cfg.MaxLevel = 1
	cfg.Extent = []float64{1}

	tree, err := BuildTree(x, nil, 1, cfg)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if tree.Depth() > 1 {
		t.Errorf("Depth() = %d, want <= 1 with MaxLevel=1", tree.Depth())
	}
}
