package hypoct

import (
	"fmt"
	"runtime"
)

// Mode selects how objects with nonzero radius are handled during
// subdivision. ModePoint ignores radius entirely; ModeElement and
// ModeSparseElement retain oversized objects at their highest-containing
// ancestor instead of descending them into a child cell.
type Mode string

const (
	ModePoint         Mode = "point"
	ModeElement       Mode = "element"
	ModeSparseElement Mode = "sparse_element"
)

// Subdivision selects the per-level subdivision predicate.
type Subdivision string

const (
	// Adaptive subdivides exactly the nodes whose occupancy, level, and
	// extent make them eligible.
	Adaptive Subdivision = "adaptive"
	// Uniform subdivides every non-trivial node at a level once any node
	// at that level becomes eligible under the adaptive predicate.
	Uniform Subdivision = "uniform"
)

// Config controls hyperoctree construction.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Mode selects point, element, or sparse_element handling of object
	// radius. Default: ModePoint.
	Mode Mode

	// Occupancy is the maximum leaf occupancy before a node becomes
	// eligible for subdivision. Must be >= 1. Default: 1.
	Occupancy int

	// MaxLevel is a hard cap on tree depth (root = level 0). A negative
	// value means unbounded. Default: -1 (unbounded).
	MaxLevel int

	// Extent gives the per-axis root extent. A non-positive entry means
	// "derive from the data bounding box, inflated to contain object
	// sizes." nil means derive every axis. Default: nil.
	Extent []float64

	// Subdivision selects the adaptive or uniform subdivision predicate.
	// Default: Adaptive.
	Subdivision Subdivision

	// Workers controls the number of goroutines used to materialize
	// derived data (geometry, neighbors, interaction lists) in parallel
	// within each level; levels are processed in order, and child
	// pointers are built serially. 0 means runtime.NumCPU().
	Workers int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Mode:        ModePoint,
		Occupancy:   1,
		MaxLevel:    -1,
		Subdivision: Adaptive,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Mode == "" {
		cfg.Mode = ModePoint
	}
	if cfg.Occupancy == 0 {
		cfg.Occupancy = 1
	}
	if cfg.Subdivision == "" {
		cfg.Subdivision = Adaptive
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error if not. d is the dimension, used to validate Extent's length.
func validateConfig(cfg *Config, d int) error {
	switch cfg.Mode {
	case ModePoint, ModeElement, ModeSparseElement:
	default:
		return fmt.Errorf("hypoct: invalid Mode %q", cfg.Mode)
	}
	switch cfg.Subdivision {
	case Adaptive, Uniform:
	default:
		return fmt.Errorf("hypoct: invalid Subdivision %q", cfg.Subdivision)
	}
	if cfg.Occupancy < 1 {
		return fmt.Errorf("hypoct: Occupancy must be >= 1, got %d", cfg.Occupancy)
	}
	if cfg.Extent != nil && len(cfg.Extent) != d {
		return fmt.Errorf("hypoct: Extent length %d does not match dimension %d", len(cfg.Extent), d)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("hypoct: Workers must be >= 0, got %d", cfg.Workers)
	}
	return nil
}

// maxDimension is the largest dimension supported by the uint32 octant
// mask used throughout this package.
const maxDimension = 32

// validateInputs checks the raw build inputs before any allocation.
// No partial state is ever exposed on failure.
func validateInputs(x [][]float64, siz []float64, d int) error {
	if d < 1 {
		return fmt.Errorf("hypoct: dimension must be >= 1, got %d", d)
	}
	if d > maxDimension {
		return fmt.Errorf("hypoct: dimension %d exceeds the %d-bit octant mask limit", d, maxDimension)
	}
	n := len(x)
	if n < 1 {
		return fmt.Errorf("hypoct: need at least 1 object, got %d", n)
	}
	for i, row := range x {
		if len(row) != d {
			return fmt.Errorf("hypoct: x[%d] has length %d, want %d", i, len(row), d)
		}
	}
	if siz != nil {
		if len(siz) != n {
			return fmt.Errorf("hypoct: siz length %d does not match N=%d", len(siz), n)
		}
		for i, s := range siz {
			if s < 0 {
				return fmt.Errorf("hypoct: siz[%d] = %g is negative", i, s)
			}
		}
	}
	return nil
}
