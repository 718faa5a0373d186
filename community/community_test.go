package community_test

import (
	"testing"

	"github.com/katalvlaran/ecotone/community"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate_OK verifies a well-formed community passes validation.
func TestValidate_OK(t *testing.T) {
	c := community.Community{ID: 1, Species: []int{1, 2, 3}, Abundance: []int{4, 0, 6}}
	require.NoError(t, c.Validate())
}

// TestValidate_Contract covers every sentinel of the input contract.
func TestValidate_Contract(t *testing.T) {
	mismatch := community.Community{Species: []int{1, 2}, Abundance: []int{3}}
	assert.ErrorIs(t, mismatch.Validate(), community.ErrSpeciesAbundanceMismatch)

	dup := community.Community{Species: []int{1, 1}, Abundance: []int{3, 4}}
	assert.ErrorIs(t, dup.Validate(), community.ErrDuplicateSpecies)

	neg := community.Community{Species: []int{1, 2}, Abundance: []int{3, -1}}
	assert.ErrorIs(t, neg.Validate(), community.ErrNegativeAbundance)

	empty := community.Community{Species: []int{1, 2}, Abundance: []int{0, 0}}
	assert.ErrorIs(t, empty.Validate(), community.ErrEmptyCommunity)
}

// TestValidateAll rejects an empty set and surfaces the first violation.
func TestValidateAll(t *testing.T) {
	assert.ErrorIs(t, community.ValidateAll(nil), community.ErrNoCommunities)

	cs := []community.Community{
		{ID: 0, Species: []int{1}, Abundance: []int{5}},
		{ID: 1, Species: []int{1}, Abundance: []int{-2}},
	}
	assert.ErrorIs(t, community.ValidateAll(cs), community.ErrNegativeAbundance)
}

// TestRichnessAndTotal checks that zero-count species are excluded from
// richness but species order does not matter.
func TestRichnessAndTotal(t *testing.T) {
	c := community.Community{Species: []int{5, 9, 2}, Abundance: []int{10, 0, 30}}
	assert.Equal(t, 2, c.Richness())
	assert.Equal(t, 40, c.TotalAbundance())
}

// TestAbundanceBySpecies omits zero-count species so presence is one probe.
func TestAbundanceBySpecies(t *testing.T) {
	c := community.Community{Species: []int{1, 2}, Abundance: []int{7, 0}}
	lookup := c.AbundanceBySpecies()
	assert.Equal(t, map[int]int{1: 7}, lookup)
}
