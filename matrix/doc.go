// Package matrix provides the dense float64 matrix kernel shared by the
// ordination engines, together with the canonical validators every engine
// applies to a dissimilarity matrix before touching it.
//
// The package intentionally stays small:
//
//   - Dense — a row-major flat-slice matrix with O(1) bounds-safe access.
//   - Validators — square shape, ≈0 diagonal, symmetry within tolerance,
//     entry bounds, and NaN/Inf rejection (ValidateDissimilarity).
//
// Dense matrices are best for the small, fully populated N×N dissimilarity
// matrices this library works with, where O(N²) memory is a given.
//
// All checks are pure, deterministic, and allocation-free.
package matrix
