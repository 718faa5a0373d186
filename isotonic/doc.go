// Package isotonic implements monotonic (isotonic) regression via the exact
// Pool-Adjacent-Violators algorithm.
//
// 🚀 What is isotonic regression?
//
//	Given observed values x and a total order in which they should be read,
//	find the sequence x̂ minimizing Σ(xᵢ−x̂ᵢ)² subject to x̂ being
//	non-decreasing in that order (ties allowed). It is the monotonic-fit
//	step at the heart of non-metric multidimensional scaling, and useful on
//	its own for calibration and dose-response fitting.
//
// Algorithm: a single left-to-right scan over the values reordered by rank,
// maintaining a stack of pools (contiguous runs sharing one fitted value).
// Whenever the running mean of the top pool exceeds the next value, pools
// merge and the fitted value becomes the arithmetic mean of the pooled raw
// values. Each element is merged at most once, so the scan is O(n) amortized.
//
// Guarantees: output length equals input length; the output read in rank
// order is non-decreasing; the output is the unique L2-optimal monotonic fit.
package isotonic
