// Package ecotone is your in-memory toolkit for analyzing ecological
// community data — from diversity indices to low-dimensional ordination.
//
// 🚀 What is ecotone?
//
//	A deterministic, zero-dependency library that brings together:
//		• Community primitives: species/abundance vectors with strict validation
//		• Diversity indices: Shannon, Simpson, Pielou, Jaccard, Sørensen, Whittaker
//		• Bray–Curtis dissimilarity matrices between sampled communities
//		• PCoA: closed-form ordination via double centering + power iteration
//		• NMDS: rank-based ordination via isotonic regression + stress descent
//		• Isotonic regression: exact Pool-Adjacent-Violators monotonic fit
//
// ✨ Why choose ecotone?
//
//   - Deterministic by construction – every random source is seedable
//   - Rock-solid guarantees – strict input validation, documented fallbacks
//   - Pure Go – no cgo, no hidden deps
//   - Degeneracy-aware – collapsed or meaningless embeddings are detected,
//     never silently returned as NaN coordinates
//
// Under the hood, everything is organized per concern:
//
//	community/  — Community model, validation & diversity indices
//	dissim/     — Bray–Curtis dissimilarity matrix builder
//	isotonic/   — Pool-Adjacent-Violators monotonic regression
//	matrix/     — dense float64 matrix kernel + shared validators
//	nmds/       — non-metric multidimensional scaling (Kruskal stress-1)
//	ordination/ — unified dispatcher: communities → 2D embedding
//	pcoa/       — principal coordinates analysis
//
// Data flow at a glance:
//
//	communities ──► Bray–Curtis D ──► { PCoA | NMDS } ──► (Axis1, Axis2) + fit stats
//
// Dive into the per-package docs for algorithms, contracts and complexity.
//
//	go get github.com/katalvlaran/ecotone
package ecotone
