// Package pcoa implements Principal Coordinates Analysis (metric
// multidimensional scaling) over a dissimilarity matrix.
//
// 🚀 What is PCoA?
//
//	A closed-form ordination: square the dissimilarities, apply Gower's
//	double centering to obtain a Gram-like matrix G, then extract the two
//	dominant eigenpairs. Coordinates are eigenvectors scaled by √λ, so the
//	2D embedding best preserves the squared dissimilarities.
//
// Algorithm outline:
//  1. Δ[i][j] = D[i][j]²
//  2. G[i][j] = −0.5·(Δ[i][j] − rowMean[i] − colMean[j] + grandMean)
//  3. For k = 0,1: power iteration with Gram–Schmidt re-orthogonalization
//     against previously found eigenvectors (≤ MaxPowerIterations steps,
//     convergence at PowerTol), eigenvalue λ = vᵀGv, then deflation
//     G ← G − λ·v·vᵀ.
//  4. coord[i][k] = v_k[i]·√max(λ_k, 0) — negative eigenvalues are the
//     non-Euclidean residual and contribute zero, standard PCoA practice.
//  5. Percent variance explained per axis = λ_k / Σ(positive λ) · 100.
//
// Determinism: eigenvector seeds come from a fixed-seed generator, so the
// same matrix always produces identical coordinates. Axis signs are
// canonicalized (largest-magnitude loading made positive).
//
// Degenerate input (N < 3 or an all-zero matrix) produces a clearly marked
// unit-circle fallback layout with placeholder variance figures — never an
// error, never NaN coordinates.
//
// Complexity: O(N²) per power-iteration step, O(N²) memory.
package pcoa
