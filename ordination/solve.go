// Package ordination - unified dispatcher for the ordination engines.
//
// Design:
//   - Solve accepts communities, validates them once, builds Bray–Curtis D,
//     and delegates to SolveMatrix; annotations are attached afterwards.
//   - SolveMatrix accepts any pre-built dissimilarity matrix and routes by
//     Options.Method; engine-level validation is not repeated here beyond
//     what the engines themselves enforce.
//   - Strict sentinels: community/matrix contract errors abort; degenerate
//     inputs surface as flagged fallback layouts, never as errors.
package ordination

import (
	"github.com/katalvlaran/ecotone/community"
	"github.com/katalvlaran/ecotone/dissim"
	"github.com/katalvlaran/ecotone/matrix"
	"github.com/katalvlaran/ecotone/nmds"
	"github.com/katalvlaran/ecotone/pcoa"
)

// Solve ordinates a set of sampled communities.
//
// Stage 1: validate the community contract (hard errors, see package
// community).
// Stage 2: build the Bray–Curtis dissimilarity matrix.
// Stage 3: delegate to SolveMatrix.
// Stage 4: annotate points with community ID, richness and total abundance.
//
// Errors: community contract sentinels, ErrUnsupportedMethod,
// nmds.ErrBadOptions.
//
// Complexity: O(S·N²) for the matrix plus the chosen engine's cost.
func Solve(cs []community.Community, opts Options) (Result, error) {
	// Stage 1: input contract (BrayCurtis validates again, but failing fast
	// here keeps the dispatcher's error source obvious).
	if err := community.ValidateAll(cs); err != nil {
		return Result{}, err
	}

	// Stage 2: dissimilarity matrix.
	d, err := dissim.BrayCurtis(cs)
	if err != nil {
		return Result{}, err
	}

	// Stage 3: engine.
	res, err := SolveMatrix(d, opts)
	if err != nil {
		return Result{}, err
	}

	// Stage 4: annotations.
	for i := range res.Points {
		res.Points[i].ID = cs[i].ID
		res.Points[i].Richness = cs[i].Richness()
		res.Points[i].TotalAbundance = cs[i].TotalAbundance()
	}

	return res, nil
}

// SolveMatrix routes a pre-built dissimilarity matrix to the engine chosen
// by opts.Method. Point IDs default to the row index; community annotations
// are zero (Solve fills them).
//
// Errors: matrix contract sentinels from the engines, ErrUnsupportedMethod,
// nmds.ErrBadOptions.
func SolveMatrix(d *matrix.Dense, opts Options) (Result, error) {
	switch opts.Method {
	case PCoA:
		res, err := pcoa.Compute(d)
		if err != nil {
			return Result{}, err
		}

		return Result{
			Method:            PCoA,
			Points:            toPoints(res.Coordinates),
			VarianceExplained: res.VarianceExplained,
			Degenerate:        res.Degenerate,
		}, nil

	case NMDS:
		res, err := nmds.Compute(d, opts.NMDS)
		if err != nil {
			return Result{}, err
		}

		return Result{
			Method:     NMDS,
			Points:     toPoints(res.Coordinates),
			Stress:     res.Stress,
			Converged:  res.Converged,
			Iterations: res.Iterations,
			Degenerate: res.Degenerate,
		}, nil

	default:
		return Result{}, ErrUnsupportedMethod
	}
}

// toPoints wraps raw engine coordinates into annotated points with the row
// index as the provisional ID.
// Complexity: O(n).
func toPoints(coords [][2]float64) []Point {
	points := make([]Point, len(coords))
	for i := range coords {
		points[i] = Point{ID: i, Axis1: coords[i][0], Axis2: coords[i][1]}
	}

	return points
}
