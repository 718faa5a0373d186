package community

import "errors"

// ErrNoCommunities is returned when an operation requires at least one community.
var ErrNoCommunities = errors.New("community: no communities supplied")

// ErrSpeciesAbundanceMismatch is returned when len(Species) != len(Abundance).
var ErrSpeciesAbundanceMismatch = errors.New("community: species/abundance length mismatch")

// ErrDuplicateSpecies is returned when a species identifier appears twice in one community.
var ErrDuplicateSpecies = errors.New("community: duplicate species identifier")

// ErrNegativeAbundance is returned when any abundance count is negative.
var ErrNegativeAbundance = errors.New("community: negative abundance")

// ErrEmptyCommunity is returned when a community's total abundance is zero.
var ErrEmptyCommunity = errors.New("community: total abundance is zero")

// Community is one sampled ecological community.
//
// Invariants (enforced by Validate, assumed everywhere else):
//   - len(Species) == len(Abundance)
//   - Species contains no duplicates
//   - Abundance[i] ≥ 0 and the total is > 0
//
// Species identifiers are opaque integers; Abundance[i] is the count of
// individuals of Species[i]. The struct is treated as immutable input.
type Community struct {
	ID        int
	Species   []int
	Abundance []int
}
