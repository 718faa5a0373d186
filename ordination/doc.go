// Package ordination is the unified dispatcher of the library: it takes a
// set of sampled communities, builds their Bray–Curtis dissimilarity matrix,
// routes it to the requested engine (PCoA or NMDS), and annotates each
// embedded point with the source community's richness and total abundance
// for the presentation layer.
//
// Entry points:
//
//   - Solve:       communities → validation → Bray–Curtis D → engine → points
//   - SolveMatrix: pre-built dissimilarity matrix → engine → points
//     (no community annotations available on this path)
//
// Design principles (shared with the engines):
//   - Deterministic: NMDS randomness flows from Options.NMDS.Seed.
//   - Strict sentinels: input contract violations abort the computation;
//     numerical degeneracies are recovered with documented fallbacks.
//   - Pure in-memory computation: no I/O, no persisted state, idempotent.
package ordination
