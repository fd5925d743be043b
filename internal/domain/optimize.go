package domain

import "fmt"

const (
	MinPrecision = 0
	MaxPrecision = 10
)

// OptimizationConfig is the fixed set of named optimizer behaviors.
// Fields that default to false are explicit overrides of the baseline preset
// and must stay off unless a caller asks otherwise.
type OptimizationConfig struct {
	MergePaths                 bool
	RemoveUselessStrokeAndFill bool

	RemoveViewBox                  bool
	RemoveHiddenElems              bool
	CollapseGroups                 bool
	RemoveNonInheritableGroupAttrs bool
	CleanupIDs                     CleanupIDsConfig

	CleanupAttrs    bool
	ConvertPathData ConvertPathDataConfig

	KeepComments bool
}

type CleanupIDsConfig struct {
	Remove bool
}

type ConvertPathDataConfig struct {
	RemoveUseless   bool
	LineShorthands  bool
	ApplyTransforms bool
	// Precision is the number of significant digits kept in numbers by the
	// minifier; 0 keeps full precision.
	Precision int
}

// DefaultOptimizationConfig returns the process-wide preset used for every
// treatment unless a per-call override is supplied.
func DefaultOptimizationConfig() OptimizationConfig {
	return OptimizationConfig{
		MergePaths:                 true,
		RemoveUselessStrokeAndFill: true,

		RemoveViewBox:                  false,
		RemoveHiddenElems:              false,
		CollapseGroups:                 false,
		RemoveNonInheritableGroupAttrs: false,
		CleanupIDs:                     CleanupIDsConfig{Remove: false},

		CleanupAttrs: true,
		ConvertPathData: ConvertPathDataConfig{
			RemoveUseless:   true,
			LineShorthands:  true,
			ApplyTransforms: true,
			Precision:       5,
		},
	}
}

// Validate checks parameterized toggles.
func (c OptimizationConfig) Validate() error {
	p := c.ConvertPathData.Precision
	if p < MinPrecision || p > MaxPrecision {
		return &OpError{
			Op:   "optimize.config",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("convert_path_data.precision %d out of range [%d, %d]: %w", p, MinPrecision, MaxPrecision, ErrInvalidConfig),
		}
	}
	return nil
}
