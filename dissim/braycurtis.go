package dissim

import (
	"sort"

	"github.com/katalvlaran/ecotone/community"
	"github.com/katalvlaran/ecotone/matrix"
)

// BrayCurtis computes the N×N Bray–Curtis dissimilarity matrix for cs.
//
// For each unordered pair (i, j):
//
//	num = Σ_s min(a(s,i), a(s,j))
//	den = Σ_s (a(s,i) + a(s,j))
//	D[i][j] = D[j][i] = 1 − 2·num/den   (0 when den == 0)
//
// summed over the sorted union of all species identifiers.
//
// Stage 1: validate every community (hard contract errors, see package
// community) and require N ≥ 1.
// Stage 2: build the sorted species universe and per-community lookups.
// Stage 3: fill both triangles from the same expression; zero diagonal.
//
// Guarantees: symmetric, zero diagonal, every entry in [0,1]. The result
// always passes matrix.ValidateDissimilarity.
//
// Complexity: O(S·N²) time, O(S + Σ sᵢ) space.
func BrayCurtis(cs []community.Community) (*matrix.Dense, error) {
	// Stage 1: input contract.
	if err := community.ValidateAll(cs); err != nil {
		return nil, err
	}
	n := len(cs)

	d, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	// Stage 2: species universe (sorted for deterministic FP summation order)
	// and abundance lookups.
	var (
		pool    = make(map[int]struct{})
		lookups = make([]map[int]int, n)
		i, j    int
	)
	for i = 0; i < n; i++ {
		lookups[i] = cs[i].AbundanceBySpecies()
		for s := range lookups[i] {
			pool[s] = struct{}{}
		}
	}
	universe := make([]int, 0, len(pool))
	for s := range pool {
		universe = append(universe, s)
	}
	sort.Ints(universe)

	// Stage 3: pairwise fill.
	var (
		ai, aj   int
		num, den float64
		value    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			num, den = 0, 0
			for _, s := range universe {
				ai = lookups[i][s]
				aj = lookups[j][s]
				if ai < aj {
					num += float64(ai)
				} else {
					num += float64(aj)
				}
				den += float64(ai + aj)
			}
			value = 0
			if den > 0 {
				value = 1 - 2*num/den
			}
			// Clamp FP noise so downstream bound checks never trip.
			if value < 0 {
				value = 0
			}
			if value > 1 {
				value = 1
			}
			_ = d.Set(i, j, value)
			_ = d.Set(j, i, value)
		}
	}

	return d, nil
}
