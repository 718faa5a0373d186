package pcoa_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ecotone/matrix"
	"github.com/katalvlaran/ecotone/pcoa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squareD builds the dissimilarity matrix of four points on the corners of a
// square with side s (scaled into [0,1]): exactly embeddable in 2D.
func squareD(t *testing.T, s float64) *matrix.Dense {
	t.Helper()
	diag := s * math.Sqrt2
	d, err := matrix.NewSquare(4)
	require.NoError(t, err)
	set := func(i, j int, v float64) {
		require.NoError(t, d.Set(i, j, v))
		require.NoError(t, d.Set(j, i, v))
	}
	// corners in order: (0,0),(s,0),(s,s),(0,s)
	set(0, 1, s)
	set(1, 2, s)
	set(2, 3, s)
	set(0, 3, s)
	set(0, 2, diag)
	set(1, 3, diag)

	return d
}

// euclid returns the Euclidean distance between two embedded points.
func euclid(a, b [2]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]

	return math.Sqrt(dx*dx + dy*dy)
}

// TestCompute_RejectsMalformedMatrix surfaces matrix contract errors.
func TestCompute_RejectsMalformedMatrix(t *testing.T) {
	_, err := pcoa.Compute(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	asym, _ := matrix.NewSquare(3)
	_ = asym.Set(0, 1, 0.2)
	_ = asym.Set(1, 0, 0.8)
	_, err = pcoa.Compute(asym)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
}

// TestCompute_DegenerateFallbacks: N<3 and all-zero D must not error but
// return the marked unit-circle layout.
func TestCompute_DegenerateFallbacks(t *testing.T) {
	small, _ := matrix.NewSquare(2)
	_ = small.Set(0, 1, 0.4)
	_ = small.Set(1, 0, 0.4)

	res, err := pcoa.Compute(small)
	require.NoError(t, err)
	assert.True(t, res.Degenerate)
	assert.Len(t, res.Coordinates, 2)

	zero, _ := matrix.NewSquare(5)
	res, err = pcoa.Compute(zero)
	require.NoError(t, err)
	assert.True(t, res.Degenerate, "all-zero D is degenerate input")
	for _, c := range res.Coordinates {
		r := math.Hypot(c[0], c[1])
		assert.InDelta(t, 1.0, r, 1e-9, "fallback points lie on the unit circle")
	}
}

// TestCompute_Determinism: two runs on the same matrix are bit-identical.
func TestCompute_Determinism(t *testing.T) {
	d := squareD(t, 0.5)

	r1, err := pcoa.Compute(d)
	require.NoError(t, err)
	r2, err := pcoa.Compute(d)
	require.NoError(t, err)

	assert.Equal(t, r1.Coordinates, r2.Coordinates, "eigen path must be free of unseeded randomness")
	assert.Equal(t, r1.VarianceExplained, r2.VarianceExplained)
}

// TestCompute_VarianceBound: the two axes never explain more than 100%.
func TestCompute_VarianceBound(t *testing.T) {
	d := squareD(t, 0.5)
	res, err := pcoa.Compute(d)
	require.NoError(t, err)

	sum := res.VarianceExplained[0] + res.VarianceExplained[1]
	assert.LessOrEqual(t, sum, 100.0+1e-6)
	assert.GreaterOrEqual(t, res.VarianceExplained[0], 0.0)
	assert.GreaterOrEqual(t, res.VarianceExplained[1], 0.0)
}

// TestCompute_RecoversSquare: an exactly 2D-embeddable matrix must come back
// with all pairwise configuration distances proportional to the input and
// the two axes carrying (essentially) all the variance.
func TestCompute_RecoversSquare(t *testing.T) {
	const side = 0.5
	d := squareD(t, side)
	res, err := pcoa.Compute(d)
	require.NoError(t, err)
	require.False(t, res.Degenerate)

	// Sides and diagonals must keep their √2 ratio.
	s01 := euclid(res.Coordinates[0], res.Coordinates[1])
	s12 := euclid(res.Coordinates[1], res.Coordinates[2])
	g02 := euclid(res.Coordinates[0], res.Coordinates[2])
	require.Greater(t, s01, 0.0)
	assert.InDelta(t, 1.0, s12/s01, 1e-6, "all sides equal")
	assert.InDelta(t, math.Sqrt2, g02/s01, 1e-6, "diagonal/side = √2")

	sum := res.VarianceExplained[0] + res.VarianceExplained[1]
	assert.Greater(t, sum, 99.0, "a perfectly 2D structure is fully explained by two axes")
}

// TestCompute_CoincidentAndOpposite mirrors the end-to-end scenario at the
// engine level: identical rows map together, maximally dissimilar rows map
// far apart.
func TestCompute_CoincidentAndOpposite(t *testing.T) {
	d, err := matrix.NewSquare(4)
	require.NoError(t, err)
	set := func(i, j int, v float64) {
		require.NoError(t, d.Set(i, j, v))
		require.NoError(t, d.Set(j, i, v))
	}
	// rows 0,1 identical; rows 2,3 at opposite extremes.
	set(0, 2, 0.5)
	set(0, 3, 0.5)
	set(1, 2, 0.5)
	set(1, 3, 0.5)
	set(2, 3, 1.0)

	res, err := pcoa.Compute(d)
	require.NoError(t, err)
	require.False(t, res.Degenerate)

	near := euclid(res.Coordinates[0], res.Coordinates[1])
	far := euclid(res.Coordinates[2], res.Coordinates[3])
	assert.Less(t, near, 1e-6, "identical communities map to coincident points")
	assert.Greater(t, far, 10*near+0.1, "opposite extremes map far apart")
}

// BenchmarkCompute measures the engine on a mid-sized synthetic matrix.
func BenchmarkCompute(b *testing.B) {
	const n = 32
	d, _ := matrix.NewSquare(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := math.Abs(math.Sin(float64(i*7+j*13))) // deterministic filler in [0,1]
			_ = d.Set(i, j, v)
			_ = d.Set(j, i, v)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pcoa.Compute(d); err != nil {
			b.Fatal(err)
		}
	}
}
