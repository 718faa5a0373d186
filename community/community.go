package community

// Validate checks the Community contract: equal vector lengths, unique
// species, non-negative counts, and a positive total abundance.
//
// Stage 1: shape (length mismatch).
// Stage 2: per-entry scan (duplicates, negatives) accumulating the total.
// Stage 3: degenerate total.
//
// Errors: ErrSpeciesAbundanceMismatch, ErrDuplicateSpecies,
// ErrNegativeAbundance, ErrEmptyCommunity.
//
// Complexity: O(s) time, O(s) space for the uniqueness set.
func (c Community) Validate() error {
	// Stage 1: shape.
	if len(c.Species) != len(c.Abundance) {
		return ErrSpeciesAbundanceMismatch
	}

	// Stage 2: entry scan.
	var (
		seen  = make(map[int]struct{}, len(c.Species))
		total int
		i     int
		s     int
		ok    bool
	)
	for i = 0; i < len(c.Species); i++ {
		s = c.Species[i]
		if _, ok = seen[s]; ok {
			return ErrDuplicateSpecies
		}
		seen[s] = struct{}{}

		if c.Abundance[i] < 0 {
			return ErrNegativeAbundance
		}
		total += c.Abundance[i]
	}

	// Stage 3: a community with zero individuals is degenerate input.
	if total == 0 {
		return ErrEmptyCommunity
	}

	return nil
}

// ValidateAll validates every community in cs and requires cs to be non-empty.
// The first violation aborts; callers treat any error as a hard contract
// failure of the whole input set.
//
// Complexity: O(Σ sᵢ).
func ValidateAll(cs []Community) error {
	if len(cs) == 0 {
		return ErrNoCommunities
	}
	for i := range cs {
		if err := cs[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Richness returns the number of species with a positive count.
// Complexity: O(s).
func (c Community) Richness() int {
	var n int
	for i := range c.Abundance {
		if c.Abundance[i] > 0 {
			n++
		}
	}

	return n
}

// TotalAbundance returns the total number of individuals in the community.
// Complexity: O(s).
func (c Community) TotalAbundance() int {
	var total int
	for i := range c.Abundance {
		total += c.Abundance[i]
	}

	return total
}

// AbundanceBySpecies returns a species → count lookup for the community.
// Species with zero recorded abundance are omitted, so presence can be
// tested with a single map probe.
// Complexity: O(s) time and space.
func (c Community) AbundanceBySpecies() map[int]int {
	lookup := make(map[int]int, len(c.Species))
	for i := range c.Species {
		if c.Abundance[i] > 0 {
			lookup[c.Species[i]] = c.Abundance[i]
		}
	}

	return lookup
}
