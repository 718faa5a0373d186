package ordination

import (
	"errors"

	"github.com/katalvlaran/ecotone/nmds"
)

// ErrUnsupportedMethod is returned when Options.Method is not a known engine.
var ErrUnsupportedMethod = errors.New("ordination: unsupported method")

// Method selects the ordination engine.
type Method int

const (
	// PCoA — Principal Coordinates Analysis: closed-form, deterministic,
	// reports percent variance explained per axis.
	PCoA Method = iota

	// NMDS — Non-metric Multidimensional Scaling: iterative, rank-based,
	// reports Kruskal stress-1 and a convergence flag.
	NMDS
)

// Options configures a Solve call. The zero value runs PCoA; for NMDS the
// nested options follow the nmds zero-value-means-default policy.
type Options struct {
	Method Method
	NMDS   nmds.Options
}

// Point is one embedded community, annotated for display.
type Point struct {
	// ID echoes the source community's identifier (index on the
	// SolveMatrix path).
	ID int

	// Axis1, Axis2 are the 2D ordination coordinates.
	Axis1, Axis2 float64

	// Richness and TotalAbundance describe the source community; both are
	// zero on the SolveMatrix path where no communities are available.
	Richness       int
	TotalAbundance int
}

// Result is the outcome of an ordination run. Engine-specific fit statistics
// are populated according to Method and zero otherwise.
type Result struct {
	Method Method
	Points []Point

	// PCoA: percent variance explained per axis (placeholders when Degenerate).
	VarianceExplained [2]float64

	// NMDS: Kruskal stress-1, convergence flag, winning attempt's iterations.
	Stress     float64
	Converged  bool
	Iterations int

	// Degenerate marks a fallback layout from either engine.
	Degenerate bool
}
