// Package nmds implements Non-metric Multidimensional Scaling: an iterative
// ordination that arranges N points in the plane so that the rank order of
// their distances matches the rank order of the input dissimilarities, as
// measured by Kruskal stress-1.
//
// 🚀 How it works
//
//	Per optimization attempt:
//	  1. Initialize a 2D configuration (unit circle, grid, or random at one
//	     of several scales — structured starts first, then randomized).
//	  2. Iterate (≤ MaxIterations):
//	     a. compute all pairwise configuration distances;
//	     b. fit them monotonically against the dissimilarity rank order via
//	        isotonic regression → target distances;
//	     c. stress = √(Σ(dist−target)² / Σ dist²)  (Kruskal stress-1);
//	     d. stop on stagnation (|Δstress| < Eps for StagnationLimit
//	        consecutive iterations);
//	     e. otherwise take a synchronous gradient step: every pair pushes
//	        its endpoints together/apart proportionally to (dist−target)/dist
//	        with a decaying step size BaseStep·exp(−iter/100).
//	  3. Abandon early if an axis collapses below DegeneracyThreshold after
//	     the warm-up period (the attempt converged onto a line).
//
//	Across attempts the lowest-stress non-degenerate configuration wins,
//	with early termination once stress drops below GoodEnough. The winner is
//	centered at the origin and uniformly rescaled so the largest coordinate
//	magnitude equals DisplayBound.
//
// Zero dissimilarities are honored literally: pairs with D[i][j]==0 get a
// target of 0, so compositionally identical communities are pulled onto the
// same point instead of merely being the closest pair.
//
// Failure semantics: numeric blow-ups discard the affected attempt; if no
// attempt produces a valid configuration the documented unit-circle fallback
// is returned (Degenerate=true), never an error, never NaN coordinates.
//
// Determinism: all randomness flows from Options.Seed (0 ⇒ fixed default
// seed); each attempt derives an independent stream, so results are
// reproducible and independent of scheduling.
//
// Complexity: O(Attempts·MaxIterations·N²) time, O(N²) space.
package nmds
