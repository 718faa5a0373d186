package nmds

import "errors"

// ErrBadOptions is returned when an Options field is negative or otherwise
// nonsensical (zero values mean "use the default" and are always accepted).
var ErrBadOptions = errors.New("nmds: invalid options")

// Default tuning. DefaultOptions returns these; Compute also substitutes
// them for zero-valued fields so the zero Options value is usable.
const (
	// DefaultAttempts is the number of independent restarts.
	DefaultAttempts = 8

	// DefaultMaxIterations caps the gradient steps per attempt.
	DefaultMaxIterations = 500

	// DefaultEps is the stress-stagnation tolerance.
	DefaultEps = 1e-7

	// DefaultStagnationLimit is how many consecutive sub-Eps stress changes
	// count as convergence.
	DefaultStagnationLimit = 15

	// DefaultGoodEnough stops launching further attempts once a finished
	// attempt reaches this stress.
	DefaultGoodEnough = 0.15

	// DefaultBaseStep is the initial gradient step size; it decays as
	// exp(−iter/100).
	DefaultBaseStep = 0.2

	// DefaultDisplayBound is the post-scaling maximum coordinate magnitude.
	DefaultDisplayBound = 2.0

	// DefaultDegeneracyThreshold is the minimum per-axis coordinate range a
	// configuration must keep (checked after warm-up, and on candidates).
	DefaultDegeneracyThreshold = 0.05

	// DefaultWarmup is the number of iterations before the axis-collapse
	// guard starts firing.
	DefaultWarmup = 50
)

// ConvergedStressBound: a final stress below this reports Converged=true.
const ConvergedStressBound = 0.2

// roundScale stabilizes the reported stress to 1e−9 precision.
const roundScale = 1e9

// distTol guards divisions by near-zero configuration distances.
const distTol = 1e-12

// degenerateTol decides when an off-diagonal entry of D counts as zero for
// the all-identical short circuit.
const degenerateTol = 1e-12

// Options configures an NMDS run. The zero value is valid: every zero field
// is replaced by its Default constant, and Seed==0 selects the fixed default
// random stream (deterministic).
type Options struct {
	// Seed drives all randomized initializations. 0 ⇒ fixed default seed.
	Seed int64

	// Attempts is the number of independent restarts (structured inits
	// first, randomized after).
	Attempts int

	// MaxIterations caps the gradient loop of one attempt.
	MaxIterations int

	// Eps is the stress-stagnation tolerance.
	Eps float64

	// StagnationLimit is the consecutive sub-Eps change count treated as
	// convergence.
	StagnationLimit int

	// GoodEnough allows early termination across attempts.
	GoodEnough float64

	// BaseStep is the initial gradient step size.
	BaseStep float64

	// DisplayBound is the maximum coordinate magnitude after final scaling.
	DisplayBound float64

	// DegeneracyThreshold is the minimum acceptable per-axis range.
	DegeneracyThreshold float64

	// Warmup is the iteration count before the degeneracy guard activates.
	Warmup int
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		Seed:                0,
		Attempts:            DefaultAttempts,
		MaxIterations:       DefaultMaxIterations,
		Eps:                 DefaultEps,
		StagnationLimit:     DefaultStagnationLimit,
		GoodEnough:          DefaultGoodEnough,
		BaseStep:            DefaultBaseStep,
		DisplayBound:        DefaultDisplayBound,
		DegeneracyThreshold: DefaultDegeneracyThreshold,
		Warmup:              DefaultWarmup,
	}
}

// Result is the outcome of an NMDS ordination.
type Result struct {
	// Coordinates holds one (Axis1, Axis2) pair per input row of D, in the
	// same order, centered at the origin and scaled to DisplayBound.
	Coordinates [][2]float64

	// Stress is the Kruskal stress-1 of the returned configuration
	// (0 for the degenerate fallback).
	Stress float64

	// Converged reports Stress < ConvergedStressBound for an optimized
	// configuration. It is never true for fallback layouts (Degenerate=true),
	// whose Stress=0 is a placeholder rather than a measured fit.
	Converged bool

	// Iterations is the gradient-step count of the winning attempt.
	Iterations int

	// Degenerate marks the fallback layout: degenerate input (N < 3,
	// all-zero D) or no attempt producing a valid configuration. Fit
	// statistics are then placeholders, not measurements.
	Degenerate bool
}
