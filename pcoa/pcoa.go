package pcoa

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/ecotone/matrix"
)

// Compute runs Principal Coordinates Analysis on the dissimilarity matrix d.
//
// Stage 1: validate d via matrix.ValidateDissimilarity (hard contract errors).
// Stage 2: degenerate input (N < 3 or all-zero D) → unit-circle fallback.
// Stage 3: Gower double centering into a flat Gram buffer.
// Stage 4: two eigenpairs by deflated power iteration; per-component numeric
// failures discard only that component (its axis collapses to zero).
// Stage 5: coordinates, sign canonicalization, variance percentages.
//
// Determinism: fixed eigenvector seeding; identical inputs yield identical
// results. Never returns NaN coordinates.
//
// Complexity: O(MaxPowerIterations·N²) time, O(N²) space.
func Compute(d *matrix.Dense) (Result, error) {
	// Stage 1: contract.
	n, err := matrix.ValidateDissimilarity(d)
	if err != nil {
		return Result{}, err
	}

	// Stage 2: degenerate input is recovered, not raised.
	if n < 3 || matrix.IsZeroOffDiagonal(d, degenerateTol) {
		return Result{
			Coordinates:       fallbackCircle(n),
			VarianceExplained: [2]float64{fallbackVarAxis1, fallbackVarAxis2},
			Degenerate:        true,
		}, nil
	}

	// Stage 3: double centering. g = -0.5*(Δ - rowMean_i - rowMean_j + grand)
	// with Δ = D². Row means equal column means since Δ is symmetric.
	var (
		raw   = d.Raw()
		delta = make([]float64, n*n)
		rm    = make([]float64, n)
		grand float64
		i, j  int
		v     float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = raw[i*n+j]
			v *= v
			delta[i*n+j] = v
			rm[i] += v
			grand += v
		}
	}
	fn := float64(n)
	for i = 0; i < n; i++ {
		rm[i] /= fn
	}
	grand /= fn * fn

	g := make([]float64, n*n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			g[i*n+j] = -0.5 * (delta[i*n+j] - rm[i] - rm[j] + grand)
		}
	}

	// Total variance proxy: trace(G) = Σ of all eigenvalues. With
	// non-Euclidean input some eigenvalues are negative, so trace(G)
	// UNDERSTATES the sum of positive eigenvalues and the reported
	// percentages may OVERSTATE the per-axis share. The clamp below
	// (denominator = max(trace, λ₁+λ₂)) only keeps them within [0,100].
	var trace float64
	for i = 0; i < n; i++ {
		trace += g[i*n+i]
	}

	// Stage 4: deflated power iteration for the two leading eigenpairs.
	var (
		vecs = make([][]float64, 0, 2)
		vals = make([]float64, 0, 2)
		k    int
	)
	for k = 0; k < 2; k++ {
		vec, val, ok := dominantEigenpair(g, n, vecs, powerSeedBase+int64(k))
		if !ok {
			// Numeric instability: discard this component only.
			vec = make([]float64, n)
			val = 0
		}
		vecs = append(vecs, vec)
		vals = append(vals, val)

		// Deflate: G ← G − λ·v·vᵀ.
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				g[i*n+j] -= val * vec[i] * vec[j]
			}
		}
	}

	// Stage 5: coordinates = eigenvector · √max(λ,0).
	var (
		coords = make([][2]float64, n)
		scale  [2]float64
	)
	for k = 0; k < 2; k++ {
		if vals[k] > 0 {
			scale[k] = math.Sqrt(vals[k])
		}
	}
	for i = 0; i < n; i++ {
		coords[i][0] = vecs[0][i] * scale[0]
		coords[i][1] = vecs[1][i] * scale[1]
	}
	canonicalizeSigns(coords)

	// Variance explained per axis.
	var (
		pos1 = math.Max(vals[0], 0)
		pos2 = math.Max(vals[1], 0)
		tot  = trace
	)
	if tot < pos1+pos2 {
		tot = pos1 + pos2
	}
	varExp := [2]float64{fallbackVarAxis1, fallbackVarAxis2}
	if tot > 0 {
		varExp[0] = round1e9(pos1 / tot * 100)
		varExp[1] = round1e9(pos2 / tot * 100)
	}

	return Result{Coordinates: coords, VarianceExplained: varExp}, nil
}

// dominantEigenpair extracts the dominant eigenpair of the symmetric matrix
// g (flat n×n), orthogonal to all vectors in prev.
//
// The seed vector comes from a fixed-seed generator: a deterministic start
// that is never accidentally orthogonal to the dominant eigenvector (the
// uniform vector would be — double-centered G annihilates it).
//
// Returns ok=false when the iteration degenerates (zero vector after
// orthogonalization, or non-finite values).
//
// Complexity: O(MaxPowerIterations·n²).
func dominantEigenpair(g []float64, n int, prev [][]float64, seed int64) ([]float64, float64, bool) {
	rng := rand.New(rand.NewSource(seed))

	vec := make([]float64, n)
	for i := 0; i < n; i++ {
		vec[i] = rng.Float64()*2 - 1
	}
	if !orthonormalize(vec, prev) {
		return nil, 0, false
	}

	var (
		next = make([]float64, n)
		iter int
		i, j int
		sum  float64
		diff float64
	)
	for iter = 0; iter < MaxPowerIterations; iter++ {
		// next ← G·vec
		for i = 0; i < n; i++ {
			sum = 0
			for j = 0; j < n; j++ {
				sum += g[i*n+j] * vec[j]
			}
			next[i] = sum
		}
		if !orthonormalize(next, prev) {
			return nil, 0, false
		}

		// Sign-insensitive convergence: a negative eigenvalue flips the
		// iterate every step, so compare against both orientations.
		diff = signedMinDistance(next, vec)
		copy(vec, next)
		if diff < PowerTol {
			break
		}
	}

	// Rayleigh quotient λ = vᵀ·G·v.
	var lambda float64
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < n; j++ {
			sum += g[i*n+j] * vec[j]
		}
		lambda += vec[i] * sum
	}
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return nil, 0, false
	}

	return vec, lambda, true
}

// orthonormalize removes the projections of v onto each vector of basis
// (classical Gram–Schmidt) and normalizes it in place. Returns false when v
// collapses to (numerically) zero.
// Complexity: O(len(basis)·n).
func orthonormalize(v []float64, basis [][]float64) bool {
	var (
		n   = len(v)
		dot float64
		i   int
	)
	for _, b := range basis {
		dot = 0
		for i = 0; i < n; i++ {
			dot += v[i] * b[i]
		}
		for i = 0; i < n; i++ {
			v[i] -= dot * b[i]
		}
	}

	var norm float64
	for i = 0; i < n; i++ {
		norm += v[i] * v[i]
	}
	norm = math.Sqrt(norm)
	if norm < 1e-300 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return false
	}
	for i = 0; i < n; i++ {
		v[i] /= norm
	}

	return true
}

// signedMinDistance returns min(‖a−b‖, ‖a+b‖): the distance between unit
// vectors up to orientation.
// Complexity: O(n).
func signedMinDistance(a, b []float64) float64 {
	var (
		dm, dp float64
		t      float64
	)
	for i := range a {
		t = a[i] - b[i]
		dm += t * t
		t = a[i] + b[i]
		dp += t * t
	}
	if dp < dm {
		dm = dp
	}

	return math.Sqrt(dm)
}

// canonicalizeSigns flips each axis so its largest-magnitude coordinate is
// positive, giving repeated runs (and tests) a stable orientation.
// Complexity: O(n).
func canonicalizeSigns(coords [][2]float64) {
	var (
		axis, i  int
		best     float64
		bestSign float64
		a        float64
	)
	for axis = 0; axis < 2; axis++ {
		best, bestSign = 0, 1
		for i = 0; i < len(coords); i++ {
			a = math.Abs(coords[i][axis])
			if a > best {
				best = a
				bestSign = math.Copysign(1, coords[i][axis])
			}
		}
		if bestSign < 0 {
			for i = 0; i < len(coords); i++ {
				coords[i][axis] = -coords[i][axis]
			}
		}
	}
}

// fallbackCircle lays n points evenly on the unit circle: the documented
// degenerate-input layout.
// Complexity: O(n).
func fallbackCircle(n int) [][2]float64 {
	coords := make([][2]float64, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		coords[i] = [2]float64{math.Cos(angle), math.Sin(angle)}
	}

	return coords
}

// round1e9 stabilizes a reported statistic to 1e−9 precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
