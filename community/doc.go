// Package community defines the sampled-community input model consumed by
// the ordination engines, strict contract validation for it, and the
// classical diversity indices computed over species/abundance vectors.
//
// 🚀 What is a Community?
//
//	A single ecological sample: which species were observed, and how many
//	individuals of each. Communities are immutable inputs — this package
//	never mutates them, it only reads and validates.
//
// Provided indices:
//   - Alpha diversity: Shannon H′, Simpson (1−D), Pielou evenness, richness
//   - Beta diversity: Jaccard & Sørensen similarity, Whittaker's beta
//   - Gamma diversity: pooled species richness across communities
//
// Validation contract (ValidateAll): species and abundance vectors of equal
// length, no duplicate species, no negative counts, total abundance > 0.
// Violations are caller contract errors and abort the whole computation;
// they are never silently tolerated downstream.
package community
