// Package dissim builds pairwise dissimilarity matrices between sampled
// communities.
//
// The provided measure is Bray–Curtis: an abundance-weighted compositional
// distance in [0,1], 0 for identical composition and 1 for disjoint species
// sets. The resulting matrix is symmetric with a zero diagonal and is the
// sole input of the ordination engines in pcoa/ and nmds/.
//
// Determinism: species are summed in sorted-identifier order, so the exact
// floating-point result is stable across runs and platforms.
//
// Complexity: O(S·N²) time for N communities over a species universe of
// size S, O(S + Σ sᵢ) extra space.
package dissim
