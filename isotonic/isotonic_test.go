package isotonic_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ecotone/isotonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// identityRank returns the rank order 0..n-1.
func identityRank(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}

	return r
}

// TestRegression_Contract covers the input sentinels.
func TestRegression_Contract(t *testing.T) {
	_, err := isotonic.Regression(nil, nil)
	assert.ErrorIs(t, err, isotonic.ErrEmptyInput)

	_, err = isotonic.Regression([]float64{1, 2}, []int{0})
	assert.ErrorIs(t, err, isotonic.ErrLengthMismatch)

	_, err = isotonic.Regression([]float64{1, 2}, []int{0, 0})
	assert.ErrorIs(t, err, isotonic.ErrBadRankOrder)

	_, err = isotonic.Regression([]float64{1, 2}, []int{0, 2})
	assert.ErrorIs(t, err, isotonic.ErrBadRankOrder)
}

// TestRegression_AlreadySorted returns the input unchanged.
func TestRegression_AlreadySorted(t *testing.T) {
	values := []float64{1, 2, 3, 3, 5}
	out, err := isotonic.Regression(values, identityRank(5))
	require.NoError(t, err)
	assert.InDeltaSlice(t, values, out, eps, "monotone input is its own optimal fit")
}

// TestRegression_FullPool pools [3,1,2] into one block of mean 2.
func TestRegression_FullPool(t *testing.T) {
	out, err := isotonic.Regression([]float64{3, 1, 2}, identityRank(3))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 2, 2}, out, eps)
}

// TestRegression_PartialPool pools only the violating prefix:
// [1,3,2,4] → [1,2.5,2.5,4].
func TestRegression_PartialPool(t *testing.T) {
	out, err := isotonic.Regression([]float64{1, 3, 2, 4}, identityRank(4))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2.5, 2.5, 4}, out, eps)
}

// TestRegression_RankReorders verifies that rank permutes the read order:
// values [2,1] with rank [1,0] is already monotone, so nothing pools.
func TestRegression_RankReorders(t *testing.T) {
	out, err := isotonic.Regression([]float64{2, 1}, []int{1, 0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 1}, out, eps)
}

// TestRegression_Monotonicity is the core property: for random inputs the
// output read in rank order is non-decreasing, and the fit never does worse
// (in L2) than the best constant fit.
func TestRegression_Monotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(40)
		values := make([]float64, n)
		for i := range values {
			values[i] = rng.Float64() * 10
		}
		rank := rng.Perm(n)

		out, err := isotonic.Regression(values, rank)
		require.NoError(t, err)
		require.Len(t, out, n)

		for k := 1; k < n; k++ {
			assert.LessOrEqual(t, out[rank[k-1]], out[rank[k]]+eps,
				"fit must be non-decreasing in rank order")
		}

		// L2-optimality spot check: the PAV fit cannot be beaten by the mean.
		var mean, sseFit, sseMean float64
		for i := range values {
			mean += values[i]
		}
		mean /= float64(n)
		for i := range values {
			sseFit += (values[i] - out[i]) * (values[i] - out[i])
			sseMean += (values[i] - mean) * (values[i] - mean)
		}
		assert.LessOrEqual(t, sseFit, sseMean+eps,
			"constant fits are monotonic, so PAV must do at least as well")
	}
}

// TestRegression_PoolMeansAreBlockMeans verifies the fitted value of each
// maximal equal-value block equals the mean of its raw values.
func TestRegression_PoolMeansAreBlockMeans(t *testing.T) {
	values := []float64{5, 3, 4, 1}
	out, err := isotonic.Regression(values, identityRank(4))
	require.NoError(t, err)

	// All four violate in sequence: single pool of mean 13/4.
	assert.InDeltaSlice(t, []float64{3.25, 3.25, 3.25, 3.25}, out, eps)
}
