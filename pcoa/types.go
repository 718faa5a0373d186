package pcoa

// MaxPowerIterations caps the refinement loop for one eigenpair.
const MaxPowerIterations = 200

// PowerTol is the convergence threshold on the change of the iterated
// eigenvector (Euclidean norm, sign-insensitive).
const PowerTol = 1e-8

// degenerateTol decides when an off-diagonal entry counts as zero for the
// all-identical-communities short circuit.
const degenerateTol = 1e-12

// Neutral variance-explained placeholders reported when both leading
// eigenvalues are non-positive (or the input is degenerate). Chosen to be
// obviously synthetic (they do not sum to 100) while keeping plots usable.
const (
	fallbackVarAxis1 = 50.0
	fallbackVarAxis2 = 30.0
)

// powerSeedBase seeds the deterministic eigenvector initialization stream;
// component k uses powerSeedBase+k. The value is arbitrary but stable so
// repeated runs are bit-identical.
const powerSeedBase int64 = 1

// roundScale stabilizes reported percentages to 1e−9 to prevent
// cross-platform FP drift.
const roundScale = 1e9

// Result is the outcome of a PCoA ordination.
type Result struct {
	// Coordinates holds one (Axis1, Axis2) pair per input row of D, in the
	// same order.
	Coordinates [][2]float64

	// VarianceExplained reports the percentage of total positive-eigenvalue
	// variance captured by each axis; the sum never exceeds 100 (plus FP
	// noise). Placeholder values when Degenerate.
	VarianceExplained [2]float64

	// Degenerate marks a fallback layout (N < 3 or all-zero D): coordinates
	// are evenly spaced on the unit circle and fit statistics are
	// placeholders, not meaningful measurements.
	Degenerate bool
}
