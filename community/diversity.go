// Package community - classical diversity indices.
//
// All index functions assume their inputs already passed Validate/ValidateAll;
// they are pure, deterministic, and never panic on validated input. Degenerate
// cases inside the formulas (single species, empty intersection) return the
// mathematically conventional value instead of NaN.
package community

import "math"

// Shannon returns the Shannon diversity index H′ = −Σ pᵢ·ln(pᵢ), where pᵢ is
// the relative abundance of species i. Zero-count species contribute nothing.
// Complexity: O(s).
func (c Community) Shannon() float64 {
	var (
		total = float64(c.TotalAbundance())
		h     float64
		p     float64
	)
	if total == 0 {
		return 0
	}
	for i := range c.Abundance {
		if c.Abundance[i] == 0 {
			continue
		}
		p = float64(c.Abundance[i]) / total
		h -= p * math.Log(p)
	}

	return h
}

// Simpson returns the Gini–Simpson index 1 − Σ pᵢ², the probability that two
// randomly drawn individuals belong to different species.
// Complexity: O(s).
func (c Community) Simpson() float64 {
	var (
		total = float64(c.TotalAbundance())
		sum   float64
		p     float64
	)
	if total == 0 {
		return 0
	}
	for i := range c.Abundance {
		if c.Abundance[i] == 0 {
			continue
		}
		p = float64(c.Abundance[i]) / total
		sum += p * p
	}

	return 1 - sum
}

// Pielou returns Pielou's evenness J = H′ / ln(richness).
// A community with fewer than two species has no meaningful evenness; the
// conventional 0 is returned rather than dividing by ln(1)=0.
// Complexity: O(s).
func (c Community) Pielou() float64 {
	r := c.Richness()
	if r < 2 {
		return 0
	}

	return c.Shannon() / math.Log(float64(r))
}

// Jaccard returns the Jaccard similarity |A∩B| / |A∪B| between the species
// present in a and b (presence/absence only, abundances ignored).
// An empty union yields 0.
// Complexity: O(sₐ + s_b).
func Jaccard(a, b Community) float64 {
	var (
		pa     = a.AbundanceBySpecies()
		pb     = b.AbundanceBySpecies()
		shared int
	)
	for s := range pa {
		if _, ok := pb[s]; ok {
			shared++
		}
	}
	union := len(pa) + len(pb) - shared
	if union == 0 {
		return 0
	}

	return float64(shared) / float64(union)
}

// Sorensen returns the Sørensen–Dice similarity 2|A∩B| / (|A|+|B|) between
// the species present in a and b. Two empty sets yield 0.
// Complexity: O(sₐ + s_b).
func Sorensen(a, b Community) float64 {
	var (
		pa     = a.AbundanceBySpecies()
		pb     = b.AbundanceBySpecies()
		shared int
	)
	for s := range pa {
		if _, ok := pb[s]; ok {
			shared++
		}
	}
	if len(pa)+len(pb) == 0 {
		return 0
	}

	return 2 * float64(shared) / float64(len(pa)+len(pb))
}

// GammaRichness returns the pooled species richness across all communities:
// the size of the union of species with positive abundance.
// Complexity: O(Σ sᵢ).
func GammaRichness(cs []Community) int {
	pool := make(map[int]struct{})
	for i := range cs {
		for s := range cs[i].AbundanceBySpecies() {
			pool[s] = struct{}{}
		}
	}

	return len(pool)
}

// MeanAlphaRichness returns the arithmetic mean of per-community richness.
// Complexity: O(Σ sᵢ).
func MeanAlphaRichness(cs []Community) float64 {
	if len(cs) == 0 {
		return 0
	}
	var sum int
	for i := range cs {
		sum += cs[i].Richness()
	}

	return float64(sum) / float64(len(cs))
}

// WhittakerBeta returns Whittaker's beta diversity β = γ/ᾱ − 1, the classic
// measure of compositional turnover across a set of communities.
// Zero mean alpha richness yields 0.
// Complexity: O(Σ sᵢ).
func WhittakerBeta(cs []Community) float64 {
	alpha := MeanAlphaRichness(cs)
	if alpha == 0 {
		return 0
	}

	return float64(GammaRichness(cs))/alpha - 1
}
